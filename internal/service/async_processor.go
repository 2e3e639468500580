package service

import (
	"context"
	"sync"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

// visitFetchWorkers сколько ссылок загружается из Shlink одновременно
const visitFetchWorkers = 4

// visitsResult переходы одной ссылки или ошибка их загрузки
type visitsResult struct {
	code   model.Code
	visits []model.Visit
	err    error
}

// fetchVisitsConcurrently загружает переходы по ссылкам несколькими воркерами
// и сливает их результаты в один канал (fanIn). На каждый код приходит ровно один результат:
// коды, не отданные воркерам из-за отмены ctx, возвращаются с ошибкой ctx.Err().
// Канал закрывается, когда обработаны все коды; вызывающий обязан дочитать его до конца.
func (s *StatisticsService) fetchVisitsConcurrently(ctx context.Context, codes []model.Code, w window) <-chan visitsResult {
	numWorkers := visitFetchWorkers
	if len(codes) < numWorkers {
		numWorkers = len(codes)
	}

	codesChan := make(chan model.Code)
	skipped := make(chan visitsResult, len(codes))
	go func() {
		defer close(codesChan)
		defer close(skipped)
		for i, code := range codes {
			select {
			case codesChan <- code:
			case <-ctx.Done():
				for _, rest := range codes[i:] {
					skipped <- visitsResult{code: rest, err: ctx.Err()}
				}
				return
			}
		}
	}()

	workerChannels := make([]chan visitsResult, numWorkers, numWorkers+1)
	for i := range workerChannels {
		out := make(chan visitsResult, 1)
		workerChannels[i] = out

		go func(output chan<- visitsResult) {
			defer close(output)
			for code := range codesChan {
				visits, err := s.fetchVisits(ctx, code, w)
				output <- visitsResult{code: code, visits: visits, err: err}
			}
		}(out)
	}

	return fanIn(append(workerChannels, skipped)...)
}

// fanIn сливает несколько каналов в один
func fanIn[T any](inputs ...chan T) <-chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for _, in := range inputs {
		go func(in <-chan T) {
			defer wg.Done()
			for v := range in {
				out <- v
			}
		}(in)
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
