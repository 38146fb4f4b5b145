package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	coursedb "github.com/strideclub/scorecard/app/modules/course/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating courses table...")

		if _, err := db.NewCreateTable().Model((*coursedb.Course)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*coursedb.Course)(nil)).
			Index("courses_name_idx").
			ColumnExpr("lower(name)").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Courses table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping courses table...")

		if _, err := db.NewDropTable().Model((*coursedb.Course)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Courses table dropped successfully!")
		return nil
	})
}
