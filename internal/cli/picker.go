package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/genostudio/genotasks/internal/core"
)

// resolveTaskID accepts a full task ID or a unique prefix (as printed by
// `list`) and returns the full ID.
func resolveTaskID(arg string) (string, error) {
	if Board == nil {
		return "", fmt.Errorf("board not initialized")
	}
	tasks, err := Board.AllTasks()
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("tarea %s no encontrada", arg)
	default:
		return "", fmt.Errorf("el identificador %q es ambiguo (%d coincidencias)", arg, len(matches))
	}
}

// pickTask shows a numbered list of the current week's tasks (or all tasks
// when the week has none) and returns the selected task ID.
func pickTask() (string, error) {
	if Board == nil {
		return "", fmt.Errorf("board not initialized")
	}

	tasks, err := Board.ListTasks(core.ListFilter{})
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}
	if len(tasks) == 0 {
		return "", fmt.Errorf("no hay tareas en el tablero (use 'genotasks add' para crear una)")
	}

	fmt.Println("\nTareas:")
	fmt.Println()
	fmt.Printf("  %-4s %-9s %-22s %-24s %-8s %s\n", "#", "ID", "SEMANA", "EQUIPO", "PRIOR.", "TAREA")
	for i, t := range tasks {
		fmt.Printf("  %-4d %-9s %-22s %-24s %-8s %s\n",
			i+1, shortID(t.ID), t.Week, t.Responsible, t.Priority, t.Title)
	}
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Selecciona una tarea [1-%d] (o 'q' para cancelar): ", len(tasks))
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if strings.EqualFold(input, "q") {
			return "", fmt.Errorf("cancelado")
		}

		num, err := strconv.Atoi(input)
		if err != nil || num < 1 || num > len(tasks) {
			fmt.Printf("  Selección inválida. Ingresa un número entre 1 y %d.\n", len(tasks))
			continue
		}
		return tasks[num-1].ID, nil
	}
}

// taskIDFromArgs resolves the task from the first positional argument, or
// falls back to the interactive picker when none was given.
func taskIDFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return resolveTaskID(args[0])
	}
	return pickTask()
}
