// Package batch applies Matrix4 operations to many independent transforms
// at once, the per-frame shape of a scene update: invert every object's
// model matrix, derive every normal matrix, or apply one view matrix to every
// model matrix.
//
// Work is split into contiguous chunks, one per worker, and run on a bounded
// errgroup. Every worker writes only its own output range, so no locking is
// needed. A failing item never stops the others; failures are reported
// together as *ItemError values joined with errors.Join, in index order.
// Cancelling the context stops the remaining chunks and returns ctx.Err().
//
//	inv, err := batch.Invert(ctx, models, batch.WithWorkers(8))
//	var ie *batch.ItemError
//	if errors.As(err, &ie) { ... } // first failing index
package batch
