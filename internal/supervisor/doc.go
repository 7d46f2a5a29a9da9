// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package supervisor runs the client's background services under suture v4.

The tree has two layers so that a failing login poller never stops
interaction delivery, and the other way around:

	RootSupervisor ("menupick")
	├── ClientSupervisor ("client-layer")
	│   └── interaction.Pipeline
	└── AuthSupervisor ("auth-layer")
	    └── auth.Poller (only when auth.poll_fallback is set)

Supervisor events are logged through sutureslog and the logging package's
slog adapter, so they share the structured output of the rest of the client.

# Usage

	tree, err := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddClientService(pipeline)
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
