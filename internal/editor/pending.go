package editor

import "sync"

// pendingPath hands a file path from a dialog goroutine to the render
// loop. Dialogs run off the main thread, but SDL/Cocoa file operations
// must happen on it, so the goroutine only deposits the chosen path and
// render() collects it next frame.
type pendingPath struct {
	mu   sync.Mutex
	path string
}

// set deposits a path, replacing any uncollected one.
func (p *pendingPath) set(path string) {
	p.mu.Lock()
	p.path = path
	p.mu.Unlock()
}

// take returns the deposited path and clears it, or "" if none.
func (p *pendingPath) take() string {
	p.mu.Lock()
	path := p.path
	p.path = ""
	p.mu.Unlock()
	return path
}
