package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flourmill/internal/adapters/out/postgres/grindingrepo"
	"flourmill/internal/adapters/out/postgres/inventoryrepo"
	"flourmill/internal/adapters/out/postgres/orderrepo"
	"flourmill/internal/adapters/out/postgres/packagingrepo"
	"flourmill/internal/adapters/out/postgres/planrepo"
	"flourmill/internal/adapters/out/postgres/productrepo"
	"flourmill/internal/adapters/out/postgres/transferrepo"
	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/product"
	"flourmill/internal/core/ports"
)

// Migrate creates or updates every table the mill uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&planrepo.PlanDTO{},
		&planrepo.BlendRowDTO{},
		&planrepo.DistributionDTO{},
		&inventoryrepo.BinDTO{},
		&inventoryrepo.ShallowDTO{},
		&inventoryrepo.GodownDTO{},
		&transferrepo.DestinationTransferDTO{},
		&transferrepo.SequentialJobDTO{},
		&transferrepo.AllocationDTO{},
		&grindingrepo.JobDTO{},
		&grindingrepo.SourceBinDTO{},
		&grindingrepo.ReportDTO{},
		&grindingrepo.LabTestDTO{},
		&packagingrepo.RecordDTO{},
		&packagingrepo.StorageTransferDTO{},
		&productrepo.FinishedGoodDTO{},
		&productrepo.RawProductDTO{},
	)
}

// Seed fills empty master-data tables with the mill's standing equipment and
// product catalog. Tables that already hold rows are left untouched, so Seed
// is safe to run on every startup.
func Seed(ctx context.Context, db *gorm.DB) error {
	uow := NewGormUnitOfWorkFactory(db).Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := seedBins(ctx, db, uow); err != nil {
		uow.Rollback(ctx)
		return err
	}
	if err := seedStorage(ctx, db, uow); err != nil {
		uow.Rollback(ctx)
		return err
	}
	if err := seedProducts(ctx, db, uow); err != nil {
		uow.Rollback(ctx)
		return err
	}

	return uow.Commit(ctx)
}

func seedBins(ctx context.Context, db *gorm.DB, uow ports.UnitOfWork) error {
	empty, err := tableIsEmpty(ctx, db, &inventoryrepo.BinDTO{})
	if err != nil || !empty {
		return err
	}

	specs := []struct {
		name     string
		binType  inventory.BinType
		capacity float64
		identity string
	}{
		{"Pre-Clean Bin 1", inventory.PreClean, 500, "PC-01"},
		{"Pre-Clean Bin 2", inventory.PreClean, 500, "PC-02"},
		{"Pre-Clean Bin 3", inventory.PreClean, 500, "PC-03"},
		{"24HR Bin 1", inventory.TwentyFourHour, 300, "24HR-01"},
		{"24HR Bin 2", inventory.TwentyFourHour, 300, "24HR-02"},
		{"24HR Bin 3", inventory.TwentyFourHour, 300, "24HR-03"},
		{"12HR Bin 301", inventory.TwelveHour, 25, "12HR-301"},
		{"12HR Bin 302", inventory.TwelveHour, 25, "12HR-302"},
		{"12HR Bin 303", inventory.TwelveHour, 25, "12HR-303"},
		{"12HR Bin 304", inventory.TwelveHour, 25, "12HR-304"},
	}

	repo := uow.BinRepository()
	for _, s := range specs {
		bin, binErr := inventory.NewBin(kernel.NewUUID(), s.name, s.binType, s.capacity, s.identity)
		if binErr != nil {
			return binErr
		}
		if addErr := repo.Add(ctx, bin); addErr != nil {
			return addErr
		}
	}
	return nil
}

func seedStorage(ctx context.Context, db *gorm.DB, uow ports.UnitOfWork) error {
	empty, err := tableIsEmpty(ctx, db, &inventoryrepo.GodownDTO{})
	if err != nil {
		return err
	}
	if empty {
		godowns := uow.GodownRepository()
		for i, location := range []string{"Warehouse A", "Warehouse B", "Warehouse C"} {
			godown, gErr := inventory.NewGodown(
				kernel.NewUUID(),
				fmt.Sprintf("FG Godown %d", i+1),
				fmt.Sprintf("FGG-0%d", i+1),
				5000,
				location,
			)
			if gErr != nil {
				return gErr
			}
			if addErr := godowns.Add(ctx, godown); addErr != nil {
				return addErr
			}
		}
	}

	empty, err = tableIsEmpty(ctx, db, &inventoryrepo.ShallowDTO{})
	if err != nil || !empty {
		return err
	}

	shallows := uow.ShallowRepository()
	for i := 1; i <= 3; i++ {
		shallow, sErr := inventory.NewShallow(
			kernel.NewUUID(),
			fmt.Sprintf("Shallow %d", i),
			fmt.Sprintf("SH-0%d", i),
			200,
		)
		if sErr != nil {
			return sErr
		}
		if addErr := shallows.Add(ctx, shallow); addErr != nil {
			return addErr
		}
	}
	return nil
}

func seedProducts(ctx context.Context, db *gorm.DB, uow ports.UnitOfWork) error {
	empty, err := tableIsEmpty(ctx, db, &productrepo.FinishedGoodDTO{})
	if err != nil {
		return err
	}
	if empty {
		repo := uow.ProductRepository()
		finishedGoods := []struct {
			name    string
			initial string
		}{
			{"Wheat Flour", "WF"},
			{"Maida", "MD"},
			{"Suji", "SJ"},
			{"Atta", "AT"},
		}
		for _, fg := range finishedGoods {
			good, fgErr := product.NewFinishedGood(kernel.NewUUID(), fg.name, fg.initial)
			if fgErr != nil {
				return fgErr
			}
			if addErr := repo.AddFinishedGood(ctx, good); addErr != nil {
				return addErr
			}
		}
	}

	empty, err = tableIsEmpty(ctx, db, &productrepo.RawProductDTO{})
	if err != nil || !empty {
		return err
	}

	repo := uow.ProductRepository()
	for _, name := range []string{"Maida", "Suji", "Chakki Ata", "Tandoori", "Bran"} {
		rp, rpErr := product.NewRawProduct(kernel.NewUUID(), name)
		if rpErr != nil {
			return rpErr
		}
		if addErr := repo.AddRawProduct(ctx, rp); addErr != nil {
			return addErr
		}
	}
	return nil
}

func tableIsEmpty(ctx context.Context, db *gorm.DB, model any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
