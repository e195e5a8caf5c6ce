package main

import (
	"errors"
	"fmt"

	"github.com/natserract/advocacy/pkg/advocacy"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	var debug bool
	var retries int

	root := &cobra.Command{
		Use:           "advocacy",
		Short:         "Query and manage advocacy targets and target groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				a.client.SetDebug(true)
			}
			if cmd.Flags().Changed("retries") {
				a.retry.retries = retries
			}
			if cmd.Annotations["auth"] == "skip" {
				return nil
			}
			return a.authenticate(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "capture debug info for every call")
	root.PersistentFlags().IntVar(&retries, "retries", 0, "retry transport failures this many times")

	root.AddCommand(
		newLegislatorsCmd(a),
		newDistrictsCmd(a),
		newTargetsCmd(a),
		newGroupsCmd(a),
		newDeliverabilityCmd(a),
		newResolveCmd(a),
		newMetricsCmd(a),
		newSubscriptionCmd(a),
		newCommitteesCmd(a),
		newTokenCmd(a),
		newEndpointsCmd(a),
		newDebugLogCmd(a),
	)
	return root
}

func newLegislatorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "legislators ZIP",
		Short: "List legislators for a ZIP or ZIP+4",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.call(ctx, "legislators", func() (*advocacy.Response, error) {
				return a.client.GetLegislators(ctx, args[0])
			})
		},
	}
}

func newDistrictsCmd(a *app) *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "districts [ZIP]",
		Short: "List districts by ZIP or by --state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case state != "" && len(args) == 0:
				return a.call(ctx, "districts", func() (*advocacy.Response, error) {
					return a.client.GetDistrictsByState(ctx, state)
				})
			case state == "" && len(args) == 1:
				return a.call(ctx, "districts", func() (*advocacy.Response, error) {
					return a.client.GetDistricts(ctx, args[0])
				})
			}
			return errors.New("pass either a ZIP or --state")
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "two-letter state abbreviation")
	return cmd
}

func newTargetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "targets", Short: "Search and manage custom targets"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "search [key=value...]",
			Short: "Search legislators and custom targets",
			RunE: func(cmd *cobra.Command, args []string) error {
				params, err := parsePairs(args)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "targets search", func() (*advocacy.Response, error) {
					return a.client.SearchTargets(ctx, params)
				})
			},
		},
		&cobra.Command{
			Use:   "list [key=value...]",
			Short: "List custom targets",
			RunE: func(cmd *cobra.Command, args []string) error {
				params, err := parsePairs(args)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "targets list", func() (*advocacy.Response, error) {
					return a.client.GetCustomTargets(ctx, params)
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one custom target",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				return a.call(ctx, "targets get", func() (*advocacy.Response, error) {
					return a.client.GetCustomTarget(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "create key=value...",
			Short: "Create a custom target",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := parseFields(args)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "targets create", func() (*advocacy.Response, error) {
					return a.client.CreateCustomTarget(ctx, fields)
				})
			},
		},
		&cobra.Command{
			Use:   "update ID key=value...",
			Short: "Update a custom target",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := parseFields(args[1:])
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "targets update", func() (*advocacy.Response, error) {
					return a.client.UpdateCustomTarget(ctx, fields, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "delete ID...",
			Short: "Delete custom targets",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.deleteAll(cmd.Context(), "targets delete", args, a.client.DeleteCustomTarget)
			},
		},
	)
	return cmd
}

func newGroupsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "groups", Short: "Search and manage target groups"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List target groups",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				return a.call(ctx, "groups list", func() (*advocacy.Response, error) {
					return a.client.GetTargetGroups(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "search [key=value...]",
			Short: "Search target groups",
			RunE: func(cmd *cobra.Command, args []string) error {
				params, err := parsePairs(args)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "groups search", func() (*advocacy.Response, error) {
					return a.client.SearchTargetGroups(ctx, params)
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one target group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				return a.call(ctx, "groups get", func() (*advocacy.Response, error) {
					return a.client.GetTargetGroup(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "message MESSAGE_ID",
			Short: "Show the target group of a message",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				return a.call(ctx, "groups message", func() (*advocacy.Response, error) {
					return a.client.GetTargetGroupByMessageID(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "create key=value...",
			Short: "Create a target group",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := parseFields(args)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "groups create", func() (*advocacy.Response, error) {
					return a.client.CreateTargetGroup(ctx, fields)
				})
			},
		},
		&cobra.Command{
			Use:   "update ID key=value...",
			Short: "Update a target group",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := parseFields(args[1:])
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				return a.call(ctx, "groups update", func() (*advocacy.Response, error) {
					return a.client.UpdateTargetGroup(ctx, fields, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "delete ID...",
			Short: "Delete target groups",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.deleteAll(cmd.Context(), "groups delete", args, a.client.DeleteTargetGroup)
			},
		},
	)
	return cmd
}

func newDeliverabilityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deliverability FORM_ID [TARGET_ID]",
		Short: "Show delivery results for an action form",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.call(ctx, "deliverability", func() (*advocacy.Response, error) {
				if len(args) == 2 {
					return a.client.GetSingleTargetDeliverability(ctx, args[0], args[1])
				}
				return a.client.GetTargetDeliverability(ctx, args[0])
			})
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve key=value...",
		Short: "Resolve a submission to its targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return a.call(ctx, "resolve", func() (*advocacy.Response, error) {
				return a.client.ResolveTargets(ctx, fields)
			})
		},
	}
}

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics PERIOD",
		Short: "Show usage metrics (hour, day, week, month, year, all)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.call(ctx, "metrics", func() (*advocacy.Response, error) {
				return a.client.GetMetrics(ctx, args[0])
			})
		},
	}
}

func newSubscriptionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subscription",
		Short: "Show the account subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.call(ctx, "subscription", func() (*advocacy.Response, error) {
				return a.client.GetSubscription(ctx)
			})
		},
	}
}

func newCommitteesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "committees",
		Short: "List legislative committees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.call(ctx, "committees", func() (*advocacy.Response, error) {
				return a.client.GetCommitteeList(ctx)
			})
		},
	}
}

func newTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "token",
		Short:       "Exchange the configured client credentials for an access token",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"auth": "skip"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.settings.HasClientCredentials() {
				return errors.New("ADVOCACY_CLIENT_ID and ADVOCACY_CLIENT_SECRET are required")
			}
			ctx := cmd.Context()
			tok, err := retry(ctx, a.retry, "token", func() (*advocacy.TokenResponse, error) {
				return a.client.GetToken(ctx, a.settings.ClientID, a.settings.ClientSecret)
			})
			if err != nil {
				return err
			}
			return a.print(tok)
		},
	}
}

func newEndpointsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "endpoints",
		Short:       "Print the supported verb/path table",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"auth": "skip"},
		RunE: func(*cobra.Command, []string) error {
			return a.print(advocacy.Endpoints())
		},
	}
}

func newDebugLogCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:         "debug-log",
		Short:       "Show recent calls recorded in the debug database",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"auth": "skip"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.store == nil {
				return fmt.Errorf("debug database is disabled; set ADVOCACY_DEBUG_DB=true")
			}
			recs, err := a.store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return a.print(recs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of records to show")
	return cmd
}
