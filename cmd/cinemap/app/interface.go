package app

import (
	"github.com/agentstation/cinemap/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
