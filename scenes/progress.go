package scenes

// Progress records which levels were finished during this session.
type Progress struct {
	completed map[string]bool
}

func NewProgress() *Progress {
	return &Progress{completed: make(map[string]bool)}
}

func (p *Progress) MarkCompleted(level string) {
	p.completed[level] = true
}

func (p *Progress) Completed(level string) bool {
	return p.completed[level]
}
