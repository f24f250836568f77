package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("pipeline must be set")
	ErrNoStages          = errors.New("at least one stage must be set")
	ErrUnknownStage      = errors.New("unknown stage")
	ErrNoReference       = errors.New("error counter needs a bit source before it")
	ErrTrialsTotal       = errors.New("total must be greater than 0")
)
