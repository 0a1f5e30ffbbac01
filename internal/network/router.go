package network

import "github.com/hexhaven/hexhaven/internal/apperrors"

// Router sends outbound commands over whichever connection they belong to.
// It satisfies the message dispatcher's Sender.
type Router struct {
	Remote   *Conn
	Practice *Practice
}

// Put routes one command line. Commands for a connection that does not
// exist fail rather than silently vanish.
func (r *Router) Put(cmd string, isPractice bool) error {
	if isPractice {
		if r.Practice == nil {
			return apperrors.ErrNotConnected
		}
		return r.Practice.Send(cmd)
	}
	if r.Remote == nil {
		return apperrors.ErrNotConnected
	}
	return r.Remote.Send(cmd)
}
