// Package organizer turns classified broker documents into a deterministic
// target tree.
//
// Engine handles one document: it extracts the date, classifies the text,
// extracts the asset code and resolves "{code}_{YYYYMMDD}" plus the grouping
// directory. Runner drives a batch sequentially: it deduplicates names
// against the target tree and the names already handed out in the run, then
// copies each source. Classification misses are recorded and skipped;
// filesystem failures abort the run.
package organizer
