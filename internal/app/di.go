package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Ckopin0130/PrintManage-sub000/internal/client/blob"
	"github.com/Ckopin0130/PrintManage-sub000/internal/config"
	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	customerrepo "github.com/Ckopin0130/PrintManage-sub000/internal/repository/customer"
	inventoryrepo "github.com/Ckopin0130/PrintManage-sub000/internal/repository/inventory"
	recordrepo "github.com/Ckopin0130/PrintManage-sub000/internal/repository/record"
	customersvc "github.com/Ckopin0130/PrintManage-sub000/internal/service/customer"
	inventorysvc "github.com/Ckopin0130/PrintManage-sub000/internal/service/inventory"
	recordsvc "github.com/Ckopin0130/PrintManage-sub000/internal/service/record"
	transfersvc "github.com/Ckopin0130/PrintManage-sub000/internal/service/transfer"
	"github.com/Ckopin0130/PrintManage-sub000/internal/store"
	memstore "github.com/Ckopin0130/PrintManage-sub000/internal/store/memory"
	mongostore "github.com/Ckopin0130/PrintManage-sub000/internal/store/mongo"
	customerhttp "github.com/Ckopin0130/PrintManage-sub000/internal/transport/http/customer"
	"github.com/Ckopin0130/PrintManage-sub000/internal/transport/http/health"
	inventoryhttp "github.com/Ckopin0130/PrintManage-sub000/internal/transport/http/inventory"
	recordhttp "github.com/Ckopin0130/PrintManage-sub000/internal/transport/http/record"
	transferhttp "github.com/Ckopin0130/PrintManage-sub000/internal/transport/http/transfer"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/closer"
)

const driverMemory = "memory"

type repositoryLifecycle interface {
	Start(ctx context.Context) error
	Stop()
	Wait()
	Health() model.Health
}

type CustomerRepository interface {
	repositoryLifecycle
	customersvc.CustomerRepository
	transfersvc.CustomerStore
}

type RecordRepository interface {
	repositoryLifecycle
	recordsvc.RecordRepository
	transfersvc.RecordStore
}

type InventoryRepository interface {
	repositoryLifecycle
	inventorysvc.InventoryRepository
	recordsvc.InventoryConsumer
	transfersvc.InventoryStore
}

type di struct {
	mongoClient *mongo.Client

	customerRepo  CustomerRepository
	recordRepo    RecordRepository
	inventoryRepo InventoryRepository

	photoStore blob.Store

	customerSvc  customerhttp.CustomerService
	recordSvc    recordhttp.RecordService
	inventorySvc inventoryhttp.InventoryService
	transferSvc  transferhttp.TransferService

	router chi.Router
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongoClient == nil {
		cfg := config.C()

		client, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return client.Disconnect(ctx)
			})

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongoClient = client
	}

	return d.mongoClient
}

func (d *di) collection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)
}

func (d *di) CustomerRepository(ctx context.Context) CustomerRepository {
	if d.customerRepo == nil {
		var st store.Collection[customerrepo.CustomerEntity]
		if config.C().Mongo.Driver() == driverMemory {
			st = memstore.NewCollection[customerrepo.CustomerEntity]()
		} else {
			st = mongostore.NewCollection[customerrepo.CustomerEntity](
				d.collection(ctx, config.C().Mongo.CustomersCollection()),
			)
		}
		d.customerRepo = customerrepo.NewCustomerRepository(
			st,
			config.C().Server.RemoteWriteTimeout(),
			nil,
		)
	}

	return d.customerRepo
}

func (d *di) RecordRepository(ctx context.Context) RecordRepository {
	if d.recordRepo == nil {
		var st store.Collection[recordrepo.RecordEntity]
		if config.C().Mongo.Driver() == driverMemory {
			st = memstore.NewCollection[recordrepo.RecordEntity]()
		} else {
			st = mongostore.NewCollection[recordrepo.RecordEntity](
				d.collection(ctx, config.C().Mongo.RecordsCollection()),
			)
		}
		d.recordRepo = recordrepo.NewRecordRepository(
			st,
			config.C().Server.RemoteWriteTimeout(),
			nil,
		)
	}

	return d.recordRepo
}

func (d *di) InventoryRepository(ctx context.Context) InventoryRepository {
	if d.inventoryRepo == nil {
		var st store.Collection[inventoryrepo.ItemEntity]
		if config.C().Mongo.Driver() == driverMemory {
			st = memstore.NewCollection[inventoryrepo.ItemEntity]()
		} else {
			st = mongostore.NewCollection[inventoryrepo.ItemEntity](
				d.collection(ctx, config.C().Mongo.InventoryCollection()),
			)
		}
		d.inventoryRepo = inventoryrepo.NewInventoryRepository(
			st,
			config.C().Server.RemoteWriteTimeout(),
			nil,
		)
	}

	return d.inventoryRepo
}

func (d *di) PhotoStore(ctx context.Context) blob.Store {
	if d.photoStore == nil {
		cfg := config.C().Photos
		if cfg.Driver() == "gcs" {
			gcs, err := blob.NewGCSStore(ctx, cfg.Bucket())
			if err != nil {
				panic(fmt.Sprintf("failed to create gcs blob store: %v\n", err))
			}
			d.photoStore = gcs
		} else {
			d.photoStore = blob.NewLocalStore(cfg.LocalDir(), cfg.BaseURL())
		}
	}

	return d.photoStore
}

func (d *di) CustomerService(ctx context.Context) customerhttp.CustomerService {
	if d.customerSvc == nil {
		d.customerSvc = customersvc.NewCustomerService(
			d.CustomerRepository(ctx),
			d.RecordRepository(ctx),
		)
	}

	return d.customerSvc
}

func (d *di) RecordService(ctx context.Context) recordhttp.RecordService {
	if d.recordSvc == nil {
		d.recordSvc = recordsvc.NewRecordService(
			d.RecordRepository(ctx),
			d.CustomerRepository(ctx),
			d.InventoryRepository(ctx),
			d.PhotoStore(ctx),
		)
	}

	return d.recordSvc
}

func (d *di) InventoryService(ctx context.Context) inventoryhttp.InventoryService {
	if d.inventorySvc == nil {
		d.inventorySvc = inventorysvc.NewInventoryService(
			d.InventoryRepository(ctx),
		)
	}

	return d.inventorySvc
}

func (d *di) TransferService(ctx context.Context) transferhttp.TransferService {
	if d.transferSvc == nil {
		d.transferSvc = transfersvc.NewTransferService(
			d.CustomerRepository(ctx),
			d.RecordRepository(ctx),
			d.InventoryRepository(ctx),
		)
	}

	return d.transferSvc
}

func (d *di) Router(ctx context.Context) chi.Router {
	if d.router == nil {
		r := chi.NewRouter()
		r.Use(
			middleware.Recoverer,
			middleware.Logger,
		)

		r.Route("/api/v1", func(api chi.Router) {
			customerhttp.NewCustomerHandler(d.CustomerService(ctx)).Register(api)
			recordhttp.NewRecordHandler(d.RecordService(ctx)).Register(api)
			inventoryhttp.NewInventoryHandler(d.InventoryService(ctx)).Register(api)
			transferhttp.NewTransferHandler(d.TransferService(ctx)).Register(api)
		})

		r.Get("/health", health.Handler(
			d.CustomerRepository(ctx),
			d.RecordRepository(ctx),
			d.InventoryRepository(ctx),
		))

		d.router = r
	}

	return d.router
}
