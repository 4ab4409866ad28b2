package tracker

// SprintStatus is the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintPlanned   SprintStatus = "planned"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// StoryStatus is the workflow state of a story.
type StoryStatus string

const (
	StoryTodo       StoryStatus = "todo"
	StoryInProgress StoryStatus = "in_progress"
	StoryInReview   StoryStatus = "in_review"
	StoryDone       StoryStatus = "done"
	StoryBlocked    StoryStatus = "blocked"
	StoryCancelled  StoryStatus = "cancelled"
)

// IsDone reports whether the story reached a terminal-success state. Legacy
// records use "completed" where current ones use "done"; both count.
func (s StoryStatus) IsDone() bool {
	return s == StoryDone || s == "completed"
}

// TaskStatus is the workflow state of a task. Tasks use a slightly
// different vocabulary than stories ("review" vs "in_review", "completed"
// vs "done").
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

// IsCompleted reports whether the task is finished.
func (s TaskStatus) IsCompleted() bool {
	return s == TaskCompleted
}

// LeaveStatus is the approval state of a leave request.
type LeaveStatus string

const (
	LeaveApproved LeaveStatus = "approved"
	LeavePending  LeaveStatus = "pending"
	LeaveRejected LeaveStatus = "rejected"
)
