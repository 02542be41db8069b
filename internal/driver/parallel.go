package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tokdump/internal/lexer"
	"tokdump/internal/logging"
	"tokdump/internal/source"
)

// TokenizeFiles токенизирует файлы параллельно; результаты в порядке paths.
// Все файлы загружаются в fileSet заранее, последовательно: FileSet не потокобезопасен
// на запись, а чтение из горутин безопасно.
func TokenizeFiles(ctx context.Context, fileSet *source.FileSet, paths []string, opts lexer.Options, jobs int) ([]TokenizeResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	log := logging.Named("driver")

	fileIDs := make([]source.FileID, len(paths))
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		fileIDs[i] = id
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i := range paths {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = tokenizeFile(fileSet, fileIDs[i], opts)
			log.Debug("tokenized", "path", results[i].Path, "tokens", len(results[i].Tokens), "reports", len(results[i].Reports))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
