package services

// Board is the single entry point an embedding client holds: browsing and
// lookups go through Directory, the side-effecting user actions through
// Workflow.
type Board struct {
	Directory *Directory
	Workflow  *Workflow
}

func NewBoard(directory *Directory, workflow *Workflow) *Board {
	return &Board{Directory: directory, Workflow: workflow}
}
