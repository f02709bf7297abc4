// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"sync"
	"testing"

	"go.astrophena.name/rnmx/internal/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	var l Lazy[int]
	var count int
	var mu sync.Mutex

	f := func() int {
		mu.Lock()
		defer mu.Unlock()
		count++
		return count
	}

	v1 := l.Get(f)
	testutil.AssertEqual(t, v1, 1)

	v2 := l.Get(f)
	testutil.AssertEqual(t, v2, 1)

	testutil.AssertEqual(t, count, 1)
}

func TestLazyConcurrent(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[string]
		calls int
		mu    sync.Mutex
		wg    sync.WaitGroup
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := l.Get(func() string {
				mu.Lock()
				defer mu.Unlock()
				calls++
				return "computed"
			})
			if got != "computed" {
				t.Errorf("Get() = %q, want %q", got, "computed")
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, calls, 1)
}
