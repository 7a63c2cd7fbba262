package queries

import (
	"context"
	"strings"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsStaff() {
		return nil, errs.NewForbiddenError("list orders", "staff only")
	}

	where, args := filterClause(query.Filter())

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+where+`
		ORDER BY o.created_at DESC, o.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderSummaries(rows)
}

func filterClause(f OrderFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if f.Status != order.Unknown {
		conditions = append(conditions, "o.status = ?")
		args = append(args, f.Status.String())
	}
	if !f.EventFrom.IsZero() {
		conditions = append(conditions, "o.event_date >= ?::date")
		args = append(args, f.EventFrom.Format(time.DateOnly))
	}
	if !f.EventTo.IsZero() {
		conditions = append(conditions, "o.event_date <= ?::date")
		args = append(args, f.EventTo.Format(time.DateOnly))
	}
	if f.City != "" {
		conditions = append(conditions, "o.event_city = ?")
		args = append(args, f.City)
	}
	if f.CustomerName != "" {
		conditions = append(conditions, `o.customer_name ILIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(f.CustomerName)+"%")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
