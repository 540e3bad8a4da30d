package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-humans/models"
)

const humansTable = "humans"

var humanColumns = []string{"id", "name", "age", "sex"}

// returningHuman makes INSERT and UPDATE hand back the stored row so that a
// single round trip both mutates and reads the record.
const returningHuman = "RETURNING id, name, age, sex"

func buildListHumansQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(humanColumns...).
		From(humansTable).
		OrderBy("id").
		ToSql()
}

func buildGetHumanQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(humanColumns...).
		From(humansTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateHumanQuery(b sq.StatementBuilderType, human models.Human) (string, []any, error) {
	return b.Insert(humansTable).
		Columns("name", "age", "sex").
		Values(human.Name, human.Age, human.Sex).
		Suffix(returningHuman).
		ToSql()
}

func buildUpdateHumanQuery(b sq.StatementBuilderType, human models.Human) (string, []any, error) {
	return b.Update(humansTable).
		Set("name", human.Name).
		Set("age", human.Age).
		Set("sex", human.Sex).
		Where(sq.Eq{"id": human.ID}).
		Suffix(returningHuman).
		ToSql()
}

func buildDeleteHumanQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(humansTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
