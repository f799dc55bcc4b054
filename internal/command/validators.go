// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tfctl/wordle/internal/output"
)

// ErrUsage is returned when a command is given the wrong arguments.
var ErrUsage = errors.New("usage error")

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func NonNegativeValidator(value any) error {
	n, ok := value.(int)
	if !ok || n < 0 {
		return fmt.Errorf("must be zero or greater, got %v", value)
	}
	return nil
}

// usageError reports a wrong argument count for the command.
func usageError(usage string, got int) error {
	return fmt.Errorf("%w: %s (got %d arguments)", ErrUsage, usage, got)
}
