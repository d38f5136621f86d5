package explain

import (
	"fmt"

	"quizme-service/internal/apperr"
)

func wrapServiceErr(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, apperr.ErrService)...)
}
