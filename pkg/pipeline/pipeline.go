// Package pipeline runs named groups of data tasks. Tasks declare the data
// keys they consume and produce; execution orders them by those edges, so a
// pipeline is a dependency graph rather than a list.
package pipeline

import (
	"context"
	"fmt"
)

// TaskFunc executes one task: it receives the data visible to the task and
// returns the values for its declared outputs.
type TaskFunc func(ctx context.Context, data map[string]any) (map[string]any, error)

// Task is a single unit of work inside a pipeline.
type Task struct {
	// ID names the task uniquely within its pipeline.
	ID string
	// Inputs lists the data keys the task consumes. Each must be produced
	// by another task or supplied in the submission seed.
	Inputs []string
	// Outputs lists the data keys the task produces.
	Outputs []string
	// Fn is the task body.
	Fn TaskFunc
}

// Pipeline is a named, validated set of tasks.
type Pipeline struct {
	name  string
	tasks []Task
}

// New validates the task set and builds a Pipeline: task IDs and output
// keys must be unique, and every task needs a body.
func New(name string, tasks ...Task) (*Pipeline, error) {
	if name == "" {
		return nil, fmt.Errorf("pipeline: name is required")
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("pipeline: %s: at least one task is required", name)
	}

	ids := make(map[string]bool, len(tasks))
	producers := make(map[string]string)
	for _, task := range tasks {
		if task.ID == "" {
			return nil, fmt.Errorf("pipeline: %s: task id is required", name)
		}
		if ids[task.ID] {
			return nil, fmt.Errorf("pipeline: %s: duplicate task %q", name, task.ID)
		}
		ids[task.ID] = true
		if task.Fn == nil {
			return nil, fmt.Errorf("pipeline: %s: task %q has no function", name, task.ID)
		}
		for _, output := range task.Outputs {
			if owner, taken := producers[output]; taken {
				return nil, fmt.Errorf("pipeline: %s: output %q produced by both %q and %q", name, output, owner, task.ID)
			}
			producers[output] = task.ID
		}
	}

	return &Pipeline{name: name, tasks: append([]Task(nil), tasks...)}, nil
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}

// Tasks returns the tasks in registration order.
func (p *Pipeline) Tasks() []Task {
	return append([]Task(nil), p.tasks...)
}

// Run executes the pipeline with the given seed data. Tasks run in
// dependency order; each task sees the seed plus every output produced
// before it. The returned map holds the seed and all task outputs.
func (p *Pipeline) Run(ctx context.Context, seed map[string]any) (map[string]any, error) {
	order, err := p.order(seed)
	if err != nil {
		return nil, err
	}

	data := make(map[string]any, len(seed))
	for key, value := range seed {
		data[key] = value
	}

	for _, task := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outputs, err := task.Fn(ctx, taskView(task, data))
		if err != nil {
			return nil, fmt.Errorf("pipeline: %s: task %q: %w", p.name, task.ID, err)
		}
		for _, key := range task.Outputs {
			value, produced := outputs[key]
			if !produced {
				return nil, fmt.Errorf("pipeline: %s: task %q did not produce output %q", p.name, task.ID, key)
			}
			data[key] = value
		}
	}

	return data, nil
}

// taskView narrows the shared data to the keys the task declared, so a task
// cannot silently depend on data it never asked for.
func taskView(task Task, data map[string]any) map[string]any {
	view := make(map[string]any, len(task.Inputs))
	for _, key := range task.Inputs {
		if value, ok := data[key]; ok {
			view[key] = value
		}
	}
	return view
}
