// Package scenario replays YAML-described workloads against the collections
// containers and reports what each one produced.
//
// A scenario may contain any of these sections:
//
//   - merge: sorted integer inputs combined with kway.MergeSorted.
//   - median: a float stream fed to a median.Tracker, one MedianStep per value.
//   - sort: integers ordered with heap.Sort.
//   - topk: the K largest values kept by heap.TopK.
//   - cache: get/set/remove ops replayed against cache.LRUCache.
//
// Load and LoadFile decode and validate documents. Run executes them:
//
//	s, err := scenario.LoadFile("testdata/basic.yaml")
//	if err != nil {
//		return err
//	}
//	rep, err := scenario.Run(ctx, s, scenario.WithLogger(log))
//
// Synthetic builds a random but reproducible cache op trace for load tests.
package scenario
