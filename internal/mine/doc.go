// Package mine implements streaming log template extraction.
//
// A Miner consumes raw log lines one at a time and incrementally groups
// them into clusters, each owning a template: the generalized form of the
// line with variable parts replaced by the <*> wildcard.
//
// The algorithm is the fixed-depth parse tree approach: lines are first
// partitioned by token count, then narrowed through up to `depth` levels
// keyed on their leading tokens, and finally matched against the handful
// of clusters at the resulting leaf using a positional similarity score.
// Lookup cost is O(depth) regardless of how many clusters exist.
//
// Basic usage:
//
//	miner, err := mine.New(mine.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	rec := miner.ProcessLine("user 4812 login")
//	fmt.Println(rec.ClusterID, rec.Template)
//
//	for _, c := range miner.Clusters() {
//	    fmt.Printf("[%d] %s (%d lines)\n", c.ID, c.TemplateString(), c.Count)
//	}
//
// A Miner is not safe for concurrent use. Either route all lines for one
// Miner through a single goroutine, or give each independent stream its
// own Miner and aggregate the dumps downstream.
package mine
