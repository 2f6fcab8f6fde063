package cmd

import (
	"context"

	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/editor"
	"github.com/PolarWolf314/keez/internal/secrets"
	"github.com/PolarWolf314/keez/internal/store"
	"github.com/PolarWolf314/keez/internal/workflows"
)

// serviceNeeds says which optional collaborators a command uses, so that
// e.g. copy never prompts for a keyring password.
type serviceNeeds struct {
	sealer bool
	editor bool
}

// newServices builds the workflow services. Tests replace it with
// in-memory fakes.
var newServices = defaultServices

func defaultServices(ctx context.Context, needs serviceNeeds) (workflows.Services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return workflows.Services{}, err
	}

	Logger.Debugf("Connecting to Parameter Store with profile=%q region=%q", cfg.AWS.Profile, cfg.AWS.Region)
	gw, err := store.NewSSMGateway(ctx, store.AWSOptions{
		Profile: cfg.AWS.Profile,
		Region:  cfg.AWS.Region,
	})
	if err != nil {
		return workflows.Services{}, err
	}
	svc := workflows.Services{Store: gw}

	if needs.sealer {
		Logger.Debugf("Opening keyring with backends=%v file_dir=%s", cfg.Keyring.Backends, cfg.KeyringDir())
		ring, err := secrets.OpenKeyring(secrets.KeyringOptions{
			Backends: cfg.Keyring.Backends,
			FileDir:  cfg.KeyringDir(),
		})
		if err != nil {
			return workflows.Services{}, err
		}
		svc.Sealer = codec.NewSealer(secrets.NewKeyringProvider(ring))
	}

	if needs.editor {
		ed, usedDefault := editor.Resolve(cfg.Editor.Command)
		if usedDefault {
			Logger.WarnfUser("No editor configured and $EDITOR is not set, using %s", editor.DefaultEditor)
		}
		Logger.Debugf("Using editor %s %v", ed.Name, ed.Args)
		svc.Editor = ed
	}

	return svc, nil
}
