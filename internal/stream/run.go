package stream

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"procnorm/internal/logger"
	"procnorm/internal/transform"
)

// Processor turns one raw record into the records to emit.
type Processor interface {
	Process(raw []byte) ([]any, error)
}

// Stats counts what happened to the input.
type Stats struct {
	Read    int
	Emitted int
	Dropped int
	Failed  int
}

// Run feeds every value of in through proc and writes the results to out.
//
// Dropped and failed records are logged and counted; the run continues. The run
// stops on malformed input, on a write error or when ctx is cancelled between
// records. The trailing newline is written in every case.
func Run(ctx context.Context, in io.Reader, out io.Writer, proc Processor, log *logger.Logger) (stats Stats, err error) {
	reader := NewReader(in)
	writer := NewWriter(out)

	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		raw, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}

		if err != nil {
			log.Error("stopping at malformed input", zap.Int("record", stats.Read+1), zap.Error(err))
			return stats, err
		}

		stats.Read++

		records, err := proc.Process(raw)

		switch {
		case err == nil:
		case transform.IsDropped(err):
			stats.Dropped++
			log.Debug("record dropped", zap.Int("record", stats.Read), zap.String("reason", err.Error()))
		default:
			stats.Failed++
			log.Error("record failed", zap.Int("record", stats.Read), zap.Error(err))
		}

		for _, record := range records {
			if err := writer.Write(record); err != nil {
				if errors.Is(err, ErrEncode) {
					stats.Failed++
					log.Error("record not encodable", zap.Int("record", stats.Read), zap.Error(err))

					continue
				}

				return stats, err
			}

			stats.Emitted++
		}
	}
}
