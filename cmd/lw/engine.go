package main

import (
	"fmt"
	"io"
	"math"

	"github.com/stuffbucket/linewire/internal/config"
	"github.com/stuffbucket/linewire/internal/logging"
	"github.com/stuffbucket/linewire/internal/proto"
)

// loadProfile resolves a profile path (flag value or default) and
// validates it.
func loadProfile(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultProfilePath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return cfg, nil
}

// buildEngine assembles a protocol engine from a device profile: one
// exchange state per declared state, one command per declared command,
// plus the built-in introspection qualifiers.
func buildEngine(cfg *config.Config, out io.Writer) (*proto.Engine, error) {
	e := proto.New(
		proto.WithOutput(out),
		proto.WithDelimiter(cfg.Delimiter[0]),
		proto.WithBufReserve(cfg.BufReserve),
	)
	if err := e.RegisterBuiltins(); err != nil {
		return nil, err
	}

	binders := make(map[string]argBinder, len(cfg.States))
	for _, sc := range cfg.States {
		b, err := bindState(e, sc)
		if err != nil {
			return nil, fmt.Errorf("state %s: %w", sc.Name, err)
		}
		binders[sc.Name] = b
	}

	for _, cc := range cfg.Commands {
		args := make(proto.Args, len(cc.Args))
		for _, ac := range cc.Args {
			kind := cfg.ArgKind(ac)
			validate := rangeValidator(kind, ac.Min, ac.Max)
			if ac.State != "" {
				args[ac.Name] = binders[ac.State](ac.Optional, validate)
			} else {
				args[ac.Name] = proto.Arg{
					Optional: ac.Optional,
					Kind:     protoKind(kind),
					Validate: validate,
				}
			}
		}
		qualifier := cc.Qualifier
		err := e.Register(qualifier, args, func(matched, unmatched proto.RawArgs) {
			logging.L().Debug("command applied",
				"qualifier", qualifier, "matched", len(matched), "unmatched", len(unmatched))
		})
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// argBinder produces a command argument that writes through a bound
// state.
type argBinder func(optional bool, validate proto.Validator) proto.Arg

func bindState(e *proto.Engine, sc config.StateConfig) (argBinder, error) {
	validate := rangeValidator(sc.Kind, sc.Min, sc.Max)

	if sc.Kind == config.KindInt {
		s, err := proto.NewExchangeState[int64](e, sc.Name)
		if err != nil {
			return nil, err
		}
		return func(optional bool, override proto.Validator) proto.Arg {
			v := validate
			if override != nil {
				v = override
			}
			return proto.Arg{
				Optional: optional,
				Kind:     proto.KindInt,
				Set:      func(val proto.Value) { s.Set(val.Int64()) },
				Validate: v,
			}
		}, nil
	}

	s, err := proto.NewExchangeState[float64](e, sc.Name)
	if err != nil {
		return nil, err
	}
	return func(optional bool, override proto.Validator) proto.Arg {
		v := validate
		if override != nil {
			v = override
		}
		return proto.Arg{
			Optional: optional,
			Kind:     proto.KindFloat,
			Set:      func(val proto.Value) { s.Set(val.Float64()) },
			Validate: v,
		}
	}, nil
}

func protoKind(kind string) proto.Kind {
	if kind == config.KindInt {
		return proto.KindInt
	}
	return proto.KindFloat
}

// rangeValidator builds a validator from optional profile bounds.
func rangeValidator(kind string, min, max *float64) proto.Validator {
	if min == nil && max == nil {
		return nil
	}
	if kind == config.KindInt {
		lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
		if min != nil {
			lo = int64(*min)
		}
		if max != nil {
			hi = int64(*max)
		}
		return proto.RangeValidator(lo, hi)
	}
	lo, hi := math.Inf(-1), math.Inf(1)
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	return proto.FloatRangeValidator(lo, hi)
}
