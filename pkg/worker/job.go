package worker

import "context"

type ContextJob func(context.Context) error
