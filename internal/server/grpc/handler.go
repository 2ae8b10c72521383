package grpc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/report"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func stringField(in *structpb.Struct, name string) string {
	return in.GetFields()[name].GetStringValue()
}

// parseAnchor reads "date" as YYYY-MM-DD, YYYY-MM or YYYY.
func parseAnchor(s string) (calendarx.Day, error) {
	switch len(s) {
	case len(calendarx.DayLayout):
		return calendarx.ParseDay(s)
	case len(calendarx.MonthLayout):
		return calendarx.ParseMonth(s)
	case 4:
		y, err := strconv.Atoi(s)
		if err == nil && y > 0 {
			return calendarx.Day{Year: y, Month: 1, Day: 1}, nil
		}
	}
	return calendarx.Day{}, fmt.Errorf("invalid date %q", s)
}

func (s *GRPCServer) snapshot(ctx context.Context) (report.Snapshot, error) {
	snap, err := s.journal.Snapshot(ctx)
	if err != nil {
		s.logger.Error(ctx, "load snapshot failed", "error", err)
		return report.Snapshot{}, status.Error(codes.Internal, "internal error")
	}
	return snap, nil
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *GRPCServer) DailySeries(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	month, err := calendarx.ParseMonth(stringField(in, "month"))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	series := snap.DailySeries(month)
	points := make([]any, len(series))
	for i, p := range series {
		points[i] = map[string]any{"day": p.Day, "value": p.Value}
	}
	return newStruct(map[string]any{
		"month":  fmt.Sprintf("%04d-%02d", month.Year, int(month.Month)),
		"points": points,
	})
}

func (s *GRPCServer) MonthlySeries(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	v, ok := in.GetFields()["year"]
	year := int(v.GetNumberValue())
	if !ok || year < 1 || float64(year) != v.GetNumberValue() {
		return nil, status.Error(codes.InvalidArgument, "year must be a positive integer")
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	series := snap.MonthlySeries(year)
	points := make([]any, len(series))
	for i, p := range series {
		points[i] = map[string]any{"month": p.Month, "value": p.Value}
	}
	return newStruct(map[string]any{"year": year, "points": points})
}

func (s *GRPCServer) scopeFrom(in *structpb.Struct) (report.Scope, error) {
	d, err := parseAnchor(stringField(in, "date"))
	if err != nil {
		return report.Scope{}, status.Error(codes.InvalidArgument, err.Error())
	}
	scope, err := report.ParseScope(stringField(in, "scope"), d)
	if err != nil {
		return report.Scope{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return scope, nil
}

func (s *GRPCServer) Distribution(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope, err := s.scopeFrom(in)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dist := snap.Distribution(scope)
	ratios := dist.Ratios()
	counts := make([]any, len(dist.Counts))
	rs := make([]any, len(ratios))
	for i := range dist.Counts {
		counts[i] = dist.Counts[i]
		rs[i] = ratios[i]
	}
	return newStruct(map[string]any{
		"scope":  scope.String(),
		"counts": counts,
		"total":  dist.Total(),
		"ratios": rs,
	})
}

func (s *GRPCServer) TagIndex(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope, err := s.scopeFrom(in)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	idx := snap.TagIndex(scope)
	tags := make([]any, 0, len(idx))
	for _, tag := range idx.Tags() {
		recs := idx[tag]
		days := make([]any, len(recs))
		for i := range recs {
			days[i] = recs[i].Day.String()
		}
		tags = append(tags, map[string]any{"tag": tag, "days": days})
	}
	return newStruct(map[string]any{"scope": scope.String(), "tags": tags})
}
