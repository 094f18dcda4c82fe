package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is the shared squirrel statement builder pinned to Postgres
// dollar placeholders. Repositories use the package-level helpers below
// instead of repeating PlaceholderFormat on every query.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
