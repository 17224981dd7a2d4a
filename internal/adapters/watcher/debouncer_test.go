package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/adapters/watcher"
)

// recorder collects debouncer batches.
type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/main.c")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/project/main.c"}}, rec.snapshot())
	})
}

func TestDebouncer_Add_CoalescesSortedAndDeduplicated(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/main.o")
		d.Add("/project/app")
		d.Add("/project/main.o")
		d.Add("/project/main.c")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/project/app", "/project/main.c", "/project/main.o"}}, rec.snapshot())
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/a")
		time.Sleep(50 * time.Millisecond)

		// Second add resets the timer
		d.Add("/project/b")
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/b")
		d.Add("/project/a")

		// Callback runs synchronously
		d.Flush()
		assert.Equal(t, [][]string{{"/project/a", "/project/b"}}, rec.snapshot())

		// The first timer must not deliver again
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/project/a")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.snapshot(), 1)

		d.Flush()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/project/a")
		d.Stop()
		d.Add("/project/b")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_Reset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/project/a")
		time.Sleep(30 * time.Millisecond)
		d.Reset()

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot())

		d.Add("/project/b")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, [][]string{{"/project/b"}}, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/project/a")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/b")
		d.Flush()
	})
}
