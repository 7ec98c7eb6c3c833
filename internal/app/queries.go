package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffdb/internal/csvline"
	"github.com/dmitrijs2005/staffdb/internal/repositories/staff"
)

// runQueries executes the fixed query sequence and stops at the first error.
func (a *App) runQueries(ctx context.Context) error {
	c := a.config

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"dump after ingestion", func(ctx context.Context) error {
			return a.drain(ctx, "All staff after loading the input:", a.repo.SelectAll(ctx))
		}},
		{"salary floor", func(ctx context.Context) error {
			title := fmt.Sprintf("Staff with a salary greater or equal to %d:", c.SalaryFloor)
			return a.drain(ctx, title, a.repo.SelectBySalaryFloor(ctx, c.SalaryFloor))
		}},
		{"insert extra record", a.insertExtra},
		{"dump after insert", func(ctx context.Context) error {
			return a.drain(ctx, "All staff after the insert:", a.repo.SelectAll(ctx))
		}},
		{"last name", func(ctx context.Context) error {
			title := fmt.Sprintf("Staff with the last name %q:", c.LastName)
			return a.drain(ctx, title, a.repo.SelectByLastName(ctx, c.LastName))
		}},
		{"update phone", a.updatePhone},
		{"dump after update", func(ctx context.Context) error {
			return a.drain(ctx, "All staff after the phone number update:", a.repo.SelectAll(ctx))
		}},
	}

	for _, s := range steps {
		a.logger.Debug(ctx, "query step", "step", s.name)
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// drain hands every record of seq to the sink as one result set.
func (a *App) drain(ctx context.Context, title string, seq staff.Records) error {
	a.sink.Begin(title)

	n := 0
	for rec, err := range seq {
		if err != nil {
			return err
		}
		if err := a.sink.Row(rec.Row()); err != nil {
			return err
		}
		n++
	}
	a.logger.Debug(ctx, "result set delivered", "rows", n)
	return a.sink.End()
}

func (a *App) insertExtra(ctx context.Context) error {
	out, err := a.repo.Insert(ctx, csvline.Parse(a.config.ExtraRecord))
	if err != nil {
		return err
	}
	if out == staff.SkippedDuplicate {
		a.logger.Warn(ctx, "extra record already exists, not inserted")
		return nil
	}
	a.logger.Info(ctx, "extra record inserted", "table", a.repo.Table().Name)
	return nil
}

func (a *App) updatePhone(ctx context.Context) error {
	id, phone := a.config.UpdateID, a.config.UpdatePhone

	out, err := a.repo.UpdatePhone(ctx, id, phone)
	if err != nil {
		return err
	}
	if out == staff.AbortedDuplicate {
		a.logger.Warn(ctx, "phone number already in use, update aborted", "id", id, "phone", phone)
		return nil
	}
	a.logger.Info(ctx, "phone number updated", "id", id, "phone", phone)
	return nil
}
