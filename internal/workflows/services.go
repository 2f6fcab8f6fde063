package workflows

import (
	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/editor"
	"github.com/PolarWolf314/keez/internal/store"
)

// OperationMode says whether a workflow may write.
type OperationMode int

const (
	ReadWrite OperationMode = iota
	ReadOnly
)

func (m OperationMode) String() string {
	if m == ReadOnly {
		return "read-only"
	}
	return "read-write"
}

// Services are the collaborators a workflow runs against. Workflows only
// use what they need: Create never touches the Sealer, Export never opens
// an editor.
type Services struct {
	Store  store.Gateway
	Sealer *codec.Sealer
	Editor editor.Editor
}
