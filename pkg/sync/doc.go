/*
The sync package implements leetsync's incremental sync algorithm. It mirrors
accepted LeetCode submissions into a local tree, one directory per problem and
one file per submission.

Submissions are listed newest first. The timestamp of the newest submission
handled by the last completed run is stored as the watermark, so a run only
walks the listing until it reaches a submission at or below the watermark.
Nothing is filtered server side: incremental sync relies entirely on the
ordering of the listing.

The watermark is only saved after the listing has been fully walked. A run
that's interrupted leaves the old watermark in place, and the next run walks
the same submissions again. This is safe because artifacts are written
idempotently: a submission always maps to the same file with the same
contents.

Problem metadata (the README of each problem directory) is fetched lazily, at
most once per problem per run, and only if it doesn't exist locally yet.
*/
package sync
