package domain

// TriageSummary accumulates what happened over one run.
type TriageSummary struct {
	Found    int
	Moved    int
	Copied   int
	Skipped  int
	Deleted  int
	Exited   bool
	TrashDir string
	Warnings []string
}

// Touched counts the files that were actually relocated or duplicated.
func (s TriageSummary) Touched() int {
	return s.Moved + s.Copied + s.Deleted
}
