package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

type visitColor int

const (
	colorWhite visitColor = iota
	colorGray
	colorBlack
)

// order resolves the execution order: every task runs after the producers
// of its inputs. Inputs satisfied by the seed have no edge. Ties break by
// task ID so execution is deterministic, and a dependency cycle reports the
// tasks involved.
func (p *Pipeline) order(seed map[string]any) ([]Task, error) {
	byID := make(map[string]Task, len(p.tasks))
	producers := make(map[string]string)
	for _, task := range p.tasks {
		byID[task.ID] = task
		for _, output := range task.Outputs {
			producers[output] = task.ID
		}
	}

	deps := make(map[string][]string, len(p.tasks))
	for _, task := range p.tasks {
		for _, input := range task.Inputs {
			if _, seeded := seed[input]; seeded {
				continue
			}
			producer, ok := producers[input]
			if !ok {
				return nil, fmt.Errorf("pipeline: %s: task %q needs input %q but nothing produces it", p.name, task.ID, input)
			}
			if producer != task.ID {
				deps[task.ID] = append(deps[task.ID], producer)
			}
		}
		sort.Strings(deps[task.ID])
	}

	ids := make([]string, 0, len(p.tasks))
	for _, task := range p.tasks {
		ids = append(ids, task.ID)
	}
	sort.Strings(ids)

	colors := make(map[string]visitColor, len(ids))
	order := make([]Task, 0, len(ids))
	var stack []string

	var visit func(id string) error
	visit = func(id string) error {
		switch colors[id] {
		case colorBlack:
			return nil
		case colorGray:
			cycle := append(cycleFrom(stack, id), id)
			return fmt.Errorf("pipeline: %s: dependency cycle: %s", p.name, strings.Join(cycle, " -> "))
		}

		colors[id] = colorGray
		stack = append(stack, id)
		for _, dep := range deps[id] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		colors[id] = colorBlack
		order = append(order, byID[id])
		return nil
	}

	for _, id := range ids {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// cycleFrom trims the visit stack to the segment starting at the task that
// closed the cycle.
func cycleFrom(stack []string, id string) []string {
	for i, entry := range stack {
		if entry == id {
			return append([]string(nil), stack[i:]...)
		}
	}
	return append([]string(nil), stack...)
}
