package cmd

import (
	"log/slog"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/orders"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/deliveryrepo"
	"tracking/internal/adapters/out/postgres/vendorrepo"
	"tracking/internal/adapters/out/users"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"
	"tracking/internal/jobs"
	"tracking/internal/metrics"
	"tracking/internal/pkg/clock"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// CompositionRoot owns the shared infrastructure and builds every handler from it.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	metrics    *metrics.Recorder
	users      *users.Client
	orders     *orders.Client
	logger     *slog.Logger
}

// NewCompositionRoot registers the metrics on reg and creates the remote clients.
// Registering twice on one registry reuses the existing collectors.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (CompositionRoot, error) {
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(),
		metrics:    recorder,
		users:      users.NewClient(configs.UsersServiceURL, configs.RemoteTimeout, recorder, logger),
		orders:     orders.NewClient(configs.OrdersServiceURL, configs.RemoteTimeout, recorder, logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) vendorProvisioner() commands.VendorProvisioner {
	return commands.NewVendorProvisioner(c.users, c.configs.DefaultDeliveryZone, c.logger)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vendorUoW() commands.VendorUoWFactory {
	return FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoW() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

// Readers serve queries outside of any transaction and track nothing.
func (c *CompositionRoot) deliveryReader() queries.DeliveryReader {
	return deliveryrepo.NewGormDeliveryRepository(c.gormDB, nil)
}

func (c *CompositionRoot) vendorReader() queries.VendorReader {
	return vendorrepo.NewGormVendorRepository(c.gormDB, nil)
}

// CreateCreateDeliveryCommandHandler builds a fresh CreateDeliveryCommandHandler.
func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.uow(), c.vendorProvisioner(), c.metrics)
}

// CreateChangeOrderStatusCommandHandler builds a fresh ChangeOrderStatusCommandHandler.
func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoW(), c.orders, c.metrics, c.logger)
}

// CreateAssignCourierToVendorCommandHandler builds a fresh AssignCourierToVendorCommandHandler.
func (c *CompositionRoot) CreateAssignCourierToVendorCommandHandler() commands.AssignCourierToVendorCommandHandler {
	return commands.NewAssignCourierToVendorCommandHandler(c.vendorUoW(), c.users)
}

// CreateUpdateDeliveryZoneCommandHandler builds a fresh UpdateDeliveryZoneCommandHandler.
func (c *CompositionRoot) CreateUpdateDeliveryZoneCommandHandler() commands.UpdateDeliveryZoneCommandHandler {
	return commands.NewUpdateDeliveryZoneCommandHandler(c.vendorUoW())
}

// CreateFindOrCreateVendorCommandHandler builds a fresh FindOrCreateVendorCommandHandler.
func (c *CompositionRoot) CreateFindOrCreateVendorCommandHandler() commands.FindOrCreateVendorCommandHandler {
	return commands.NewFindOrCreateVendorCommandHandler(c.vendorUoW(), c.vendorProvisioner())
}

// CreateUpdateDeliveryTimeCommandHandler builds a fresh UpdateDeliveryTimeCommandHandler.
func (c *CompositionRoot) CreateUpdateDeliveryTimeCommandHandler() commands.UpdateDeliveryTimeCommandHandler {
	return commands.NewUpdateDeliveryTimeCommandHandler(c.deliveryUoW())
}

// CreateAssignCourierToDeliveryCommandHandler builds a fresh AssignCourierToDeliveryCommandHandler.
func (c *CompositionRoot) CreateAssignCourierToDeliveryCommandHandler() commands.AssignCourierToDeliveryCommandHandler {
	return commands.NewAssignCourierToDeliveryCommandHandler(c.uow())
}

// CreateReportIssueCommandHandler builds a fresh ReportIssueCommandHandler.
func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.deliveryUoW())
}

// CreateRateDeliveryCommandHandler builds a fresh RateDeliveryCommandHandler.
func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	return commands.NewRateDeliveryCommandHandler(c.deliveryUoW())
}

// CreateGetOrderStatusQueryHandler builds a fresh GetOrderStatusQueryHandler.
func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.deliveryReader())
}

// CreateGetDeliveryIDQueryHandler builds a fresh GetDeliveryIDQueryHandler.
func (c *CompositionRoot) CreateGetDeliveryIDQueryHandler() queries.GetDeliveryIDQueryHandler {
	return queries.NewGetDeliveryIDQueryHandler(c.deliveryReader())
}

// CreateGetCourierOfOrderQueryHandler builds a fresh GetCourierOfOrderQueryHandler.
func (c *CompositionRoot) CreateGetCourierOfOrderQueryHandler() queries.GetCourierOfOrderQueryHandler {
	return queries.NewGetCourierOfOrderQueryHandler(c.deliveryReader())
}

// CreateGetDeliveryTimeQueryHandler builds a fresh GetDeliveryTimeQueryHandler.
func (c *CompositionRoot) CreateGetDeliveryTimeQueryHandler() queries.GetDeliveryTimeQueryHandler {
	return queries.NewGetDeliveryTimeQueryHandler(c.deliveryReader())
}

// CreateGetEtaQueryHandler builds a fresh GetEtaQueryHandler.
func (c *CompositionRoot) CreateGetEtaQueryHandler() queries.GetEtaQueryHandler {
	return queries.NewGetEtaQueryHandler(
		c.deliveryReader(),
		services.NewEtaCalculator(c.configs.TransitDuration),
		c.clock,
	)
}

// CreateGetLiveLocationQueryHandler builds a fresh GetLiveLocationQueryHandler.
func (c *CompositionRoot) CreateGetLiveLocationQueryHandler() queries.GetLiveLocationQueryHandler {
	return queries.NewGetLiveLocationQueryHandler(
		c.deliveryReader(),
		c.vendorReader(),
		services.NewLiveLocationEstimator(c.configs.TransitDuration),
		c.clock,
	)
}

// CreateGetDeliveryIssueQueryHandler builds a fresh GetDeliveryIssueQueryHandler.
func (c *CompositionRoot) CreateGetDeliveryIssueQueryHandler() queries.GetDeliveryIssueQueryHandler {
	return queries.NewGetDeliveryIssueQueryHandler(c.deliveryReader())
}

// CreateGetAssignedCouriersQueryHandler builds a fresh GetAssignedCouriersQueryHandler.
func (c *CompositionRoot) CreateGetAssignedCouriersQueryHandler() queries.GetAssignedCouriersQueryHandler {
	return queries.NewGetAssignedCouriersQueryHandler(c.vendorReader())
}

// CreateGetDeliveryZoneQueryHandler builds a fresh GetDeliveryZoneQueryHandler.
func (c *CompositionRoot) CreateGetDeliveryZoneQueryHandler() queries.GetDeliveryZoneQueryHandler {
	return queries.NewGetDeliveryZoneQueryHandler(c.vendorReader())
}

// CreateGetVendorLocationQueryHandler builds a fresh GetVendorLocationQueryHandler.
func (c *CompositionRoot) CreateGetVendorLocationQueryHandler() queries.GetVendorLocationQueryHandler {
	return queries.NewGetVendorLocationQueryHandler(c.vendorReader())
}

// CreateGetInTransitDeliveriesQueryHandler builds a fresh GetInTransitDeliveriesQueryHandler.
func (c *CompositionRoot) CreateGetInTransitDeliveriesQueryHandler() queries.GetInTransitDeliveriesQueryHandler {
	return queries.NewGetInTransitDeliveriesQueryHandler(c.gormDB)
}

// CreateGetRatingQueryHandler builds a fresh GetRatingQueryHandler.
func (c *CompositionRoot) CreateGetRatingQueryHandler() queries.GetRatingQueryHandler {
	return queries.NewGetRatingQueryHandler(c.deliveryReader())
}

// CreateGetCourierStatisticsQueryHandler builds a fresh GetCourierStatisticsQueryHandler.
func (c *CompositionRoot) CreateGetCourierStatisticsQueryHandler() queries.GetCourierStatisticsQueryHandler {
	return queries.NewGetCourierStatisticsQueryHandler(c.gormDB, c.configs.TransitDuration)
}

// CreateGetVendorAverageQueryHandler builds a fresh GetVendorAverageQueryHandler.
func (c *CompositionRoot) CreateGetVendorAverageQueryHandler() queries.GetVendorAverageQueryHandler {
	return queries.NewGetVendorAverageQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateDelivery:          c.CreateCreateDeliveryCommandHandler(),
		ChangeOrderStatus:       c.CreateChangeOrderStatusCommandHandler(),
		AssignCourierToVendor:   c.CreateAssignCourierToVendorCommandHandler(),
		UpdateDeliveryZone:      c.CreateUpdateDeliveryZoneCommandHandler(),
		FindOrCreateVendor:      c.CreateFindOrCreateVendorCommandHandler(),
		UpdateDeliveryTime:      c.CreateUpdateDeliveryTimeCommandHandler(),
		AssignCourierToDelivery: c.CreateAssignCourierToDeliveryCommandHandler(),
		ReportIssue:             c.CreateReportIssueCommandHandler(),
		RateDelivery:            c.CreateRateDeliveryCommandHandler(),

		GetOrderStatus:         c.CreateGetOrderStatusQueryHandler(),
		GetDeliveryID:          c.CreateGetDeliveryIDQueryHandler(),
		GetCourierOfOrder:      c.CreateGetCourierOfOrderQueryHandler(),
		GetDeliveryTime:        c.CreateGetDeliveryTimeQueryHandler(),
		GetEta:                 c.CreateGetEtaQueryHandler(),
		GetLiveLocation:        c.CreateGetLiveLocationQueryHandler(),
		GetDeliveryIssue:       c.CreateGetDeliveryIssueQueryHandler(),
		GetAssignedCouriers:    c.CreateGetAssignedCouriersQueryHandler(),
		GetDeliveryZone:        c.CreateGetDeliveryZoneQueryHandler(),
		GetVendorLocation:      c.CreateGetVendorLocationQueryHandler(),
		GetInTransitDeliveries: c.CreateGetInTransitDeliveriesQueryHandler(),
		GetRating:              c.CreateGetRatingQueryHandler(),
		GetCourierStatistics:   c.CreateGetCourierStatisticsQueryHandler(),
		GetVendorAverage:       c.CreateGetVendorAverageQueryHandler(),
	}, c.logger)
}

// CreateJobManager builds the live tracking job on TRACKING_JOB_SCHEDULE.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	tracking := jobs.NewLiveTrackingJob(
		c.CreateGetInTransitDeliveriesQueryHandler(),
		services.NewLiveLocationEstimator(c.configs.TransitDuration),
		c.clock,
		c.metrics,
		c.configs.TrackingJobSchedule,
		c.logger,
	)
	return jobs.NewJobManager(tracking)
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncVendorUoWFactory adapts a function to commands.VendorUoWFactory.
type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

// FuncDeliveryUoWFactory adapts a function to commands.DeliveryUoWFactory.
type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
