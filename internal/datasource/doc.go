// Package datasource loads front-matter Markdown documents from a directory
// and runs them through the search, filter, sort, paginate, and projection
// pipeline described by a query.
package datasource
