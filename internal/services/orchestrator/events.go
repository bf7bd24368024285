package orchestrator

// events holds the registered handlers. Handlers run synchronously, in
// registration order, inside the call that triggered them.
type events struct {
	onCompleted    []func(id int)
	onFailed       []func(id int)
	onAllCompleted []func()
	onAllFinished  []func()
	onSceneFailed  []func()
}

// OnTaskCompleted registers fn to run when a task is completed
func (o *Orchestrator) OnTaskCompleted(fn func(id int)) {
	o.events.onCompleted = append(o.events.onCompleted, fn)
}

// OnTaskFailed registers fn to run when a task's time runs out
func (o *Orchestrator) OnTaskFailed(fn func(id int)) {
	o.events.onFailed = append(o.events.onFailed, fn)
}

// OnAllTasksCompleted registers fn to run once every task is completed
func (o *Orchestrator) OnAllTasksCompleted(fn func()) {
	o.events.onAllCompleted = append(o.events.onAllCompleted, fn)
}

// OnAllTasksFinished registers fn to run once every task is completed or failed
func (o *Orchestrator) OnAllTasksFinished(fn func()) {
	o.events.onAllFinished = append(o.events.onAllFinished, fn)
}

// OnSceneTasksFailed registers fn to run when all tasks finished and at least
// one of them failed
func (o *Orchestrator) OnSceneTasksFailed(fn func()) {
	o.events.onSceneFailed = append(o.events.onSceneFailed, fn)
}

func (e *events) taskCompleted(id int) {
	for _, fn := range e.onCompleted {
		fn(id)
	}
}

func (e *events) taskFailed(id int) {
	for _, fn := range e.onFailed {
		fn(id)
	}
}

func (e *events) allCompleted() {
	for _, fn := range e.onAllCompleted {
		fn()
	}
}

func (e *events) allFinished() {
	for _, fn := range e.onAllFinished {
		fn()
	}
}

func (e *events) sceneFailed() {
	for _, fn := range e.onSceneFailed {
		fn()
	}
}
