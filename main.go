package main

import (
	"fmt"
	"log"
	"net/http"

	"booking-intake-service/amadeus"
	"booking-intake-service/config"
	"booking-intake-service/handlers"
	"booking-intake-service/routes"
	"booking-intake-service/services"
	"booking-intake-service/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	server *gin.Engine
	cfg    *config.Config

	searchService       services.SearchService
	hotelService        services.HotelService
	bookingService      services.BookingService
	notificationService services.NotificationService

	searchHandler       handlers.SearchHandler
	hotelHandler        handlers.HotelHandler
	bookingHandler      handlers.BookingHandler
	notificationHandler handlers.NotificationHandler

	searchRouteHandler       routes.SearchRouteHandler
	hotelRouteHandler        routes.HotelRouteHandler
	bookingRouteHandler      routes.BookingRouteHandler
	notificationRouteHandler routes.NotificationRouteHandler
)

func init() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	lumberjackLog := &lumberjack.Logger{
		Filename:  "logs/logfile.log",
		MaxSize:   1,
		LocalTime: true,
	}
	logger.SetOutput(lumberjackLog)

	cfg = config.LoadConfig()

	tracerProvider, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress)
	if err != nil {
		log.Fatal("JaegerTraceProvider failed to Initialize", err)
	}
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	amadeusClient := amadeus.NewClient(cfg, logger)
	emailSender := utils.NewSMTPSender(cfg)

	searchService = services.NewSearchServiceImpl(amadeusClient)
	hotelService = services.NewHotelServiceImpl(amadeusClient, cfg.HotelOfferLimit, tracer, logger)
	bookingService = services.NewBookingServiceImpl(logger)
	notificationService = services.NewNotificationServiceImpl(emailSender, cfg, tracer, logger)

	searchHandler = handlers.NewSearchHandler(searchService, tracer, logger)
	hotelHandler = handlers.NewHotelHandler(hotelService, tracer, logger)
	bookingHandler = handlers.NewBookingHandler(bookingService, tracer, logger)
	notificationHandler = handlers.NewNotificationHandler(notificationService, tracer, logger)

	searchRouteHandler = routes.NewSearchRouteHandler(searchHandler)
	hotelRouteHandler = routes.NewHotelRouteHandler(hotelHandler)
	bookingRouteHandler = routes.NewBookingRouteHandler(bookingHandler)
	notificationRouteHandler = routes.NewNotificationRouteHandler(notificationHandler)

	server = gin.Default()
}

func main() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	server.Use(cors.New(corsConfig))
	server.Use(handlers.RequestIDMiddleware())

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Booking intake service is up"})
	})

	searchRouteHandler.SearchRoute(router)
	hotelRouteHandler.HotelRoute(router)
	bookingRouteHandler.BookingRoute(router)
	notificationRouteHandler.NotificationRoute(router)

	// older clients post to /send-booking without the /api prefix
	server.POST("/send-booking", routes.MiddlewareBookingDeserialization, notificationHandler.SendBooking)

	err := server.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println(err)
		return
	}
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String("development"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
