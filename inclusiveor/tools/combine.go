package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/kaleidawave/inclusive-or/inclusiveor"
	"github.com/kaleidawave/inclusive-or/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const (
	valueTypeString = "string"
	valueTypeInt    = "int"
	valueTypeUUID   = "uuid"
)

func combineValues(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 0 {
		return errors.New("usage: combine [--left value] [--right value]")
	}

	left, err := parseSide(cmd, "left")
	if err != nil {
		return err
	}

	right, err := parseSide(cmd, "right")
	if err != nil {
		return err
	}

	out := cmd.Root().Writer

	combined, exists := inclusiveor.OrInclusive(left, right).Unpack()
	if !exists {
		_, err := fmt.Fprintln(out, util.None[inclusiveor.InclusiveOr[any, any]]())
		return errors.Wrap(err, "failed to write result")
	}

	_, err = fmt.Fprintf(out,
		"%s\n"+
			"  left: %s\n"+
			"  right: %s\n",
		util.Some(combined),
		combined.GetLeft(),
		combined.GetRight(),
	)
	return errors.Wrap(err, "failed to write result")
}

func parseSide(cmd *cli.Command, side string) (util.Optional[any], error) {
	if !cmd.IsSet(side) {
		return util.None[any](), nil
	}

	raw := cmd.String(side)
	valueType := cmd.String(side + "-type")

	value, err := parseValue(raw, valueType)
	if err != nil {
		return util.None[any](), errors.Wrapf(err, "failed to parse %s value %q as %s", side, raw, valueType)
	}
	return util.Some(value), nil
}

func parseValue(raw, valueType string) (any, error) {
	switch valueType {
	case valueTypeString:
		return raw, nil
	case valueTypeInt:
		return strconv.Atoi(raw)
	case valueTypeUUID:
		return uuid.Parse(raw)
	default:
		return nil, errors.Errorf("unknown value type %q", valueType)
	}
}
