package internal

// TaskQueue is a FIFO of deferred tasks.
// Tasks are never coalesced, each Enqueue runs exactly once.
type TaskQueue struct {
	tasks []func()

	// set while draining, a nested Drain returns right away
	draining bool
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		tasks: make([]func(), 0),
	}
}

func (q *TaskQueue) Enqueue(fn func()) {
	q.tasks = append(q.tasks, fn)
}

func (q *TaskQueue) Len() int {
	return len(q.tasks)
}

// Drain runs queued tasks until the queue is empty, including tasks enqueued by the tasks themselves.
// It returns the number of tasks ran. If a task panics, the tasks behind it stay queued.
func (q *TaskQueue) Drain() int {
	if q.draining {
		return 0
	}

	q.draining = true
	defer func() { q.draining = false }()

	ran := 0
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]

		ran++
		task()
	}

	return ran
}

func (q *TaskQueue) IsDraining() bool {
	return q.draining
}
