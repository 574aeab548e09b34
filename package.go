//
// web service that runs the multi-tenant AI readiness assessment.
// package accepts questionnaire answers, computes weighted section and
// overall readiness scores, resolves a qualitative interpretation for the
// active theme, persists the submission to the aggregate store, and then
// compares the result against prior submissions to produce percentile
// rankings and benchmark insights so that organisations across different
// sectors and team sizes can all review comparable results.
//
package readiness
