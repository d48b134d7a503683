// Package catalog keeps the query-filtered, history-ranked view of the
// discovered entries.
//
// An Engine owns every admitted entry, split between the entries matching the
// current query and the excluded ones. The split is recomputed from scratch on
// each query change and the matching side is kept sorted by corrected score.
// An Engine is not safe for concurrent use: it belongs to the UI loop and
// new entries reach it through Admit.
package catalog
