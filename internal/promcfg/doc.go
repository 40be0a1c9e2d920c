// Package promcfg assembles the Prometheus configuration document from
// target declarations and option entries, applying the list-vs-scalar merge
// policy on top of the doctree primitives.
//
// Most configuration fields are scalars where the last assignment wins, but a
// known subset (rule files, scrape configs, relabeling rules, alertmanagers,
// service-discovery blocks) is inherently multi-valued and must accumulate
// across independently-sourced assignments. The merge policy encodes that
// split; see ApplyOption.
package promcfg
