// Package pagination models limit/offset paging and the self, next and
// previous links of a page.
package pagination
