package ranking

import "github.com/talentsift/screener/core"

// Monitor provides hooks to observe a ranking run.
// Implement this interface to track progress and intermediate results.
// DocumentScored and DocumentFailed are invoked from the worker pool and
// must be safe for concurrent use.
type Monitor interface {
	Start(query string, documents int)
	QueryPrepared(keywords []string)
	DocumentScored(record *core.ScoreRecord)
	DocumentFailed(name string, err error)
	Finish(set *core.ResultSet)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)             {}
func (n *noopMonitor) QueryPrepared(_ []string)          {}
func (n *noopMonitor) DocumentScored(_ *core.ScoreRecord) {}
func (n *noopMonitor) DocumentFailed(_ string, _ error)  {}
func (n *noopMonitor) Finish(_ *core.ResultSet)          {}
