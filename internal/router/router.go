package router

import (
	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/controller"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	catalogController  *controller.CatalogController
	authController     *controller.AuthController
	supplierController *controller.SupplierController
	categoryController *controller.CategoryController
	statusController   *controller.StatusController
	productController  *controller.ProductController
	exportController   *controller.ExportController
	adminGate          *middleware.AdminGate
	staticUploadsDir   string
	config             *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	authController *controller.AuthController,
	supplierController *controller.SupplierController,
	categoryController *controller.CategoryController,
	statusController *controller.StatusController,
	productController *controller.ProductController,
	exportController *controller.ExportController,
	adminGate *middleware.AdminGate,
	staticUploadsDir string,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController:  catalogController,
		authController:     authController,
		supplierController: supplierController,
		categoryController: categoryController,
		statusController:   statusController,
		productController:  productController,
		exportController:   exportController,
		adminGate:          adminGate,
		staticUploadsDir:   staticUploadsDir,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "COIMPRES catalog API is running",
		})
	})

	router.GET("/sitemap.xml", r.catalogController.Sitemap)

	// Locally stored uploads; with the S3 backend this directory stays empty.
	if r.staticUploadsDir != "" {
		router.Static("/uploads", r.staticUploadsDir)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/home", r.catalogController.Home)
		v1.GET("/products", r.catalogController.ListProducts)
		v1.GET("/products/:slug", r.catalogController.GetProductBySlug)
		v1.GET("/categories", r.catalogController.ListCategories)
		v1.GET("/categories/:slug/subcategories", r.catalogController.ListSubcategories)
		v1.GET("/suppliers", r.catalogController.ListSuppliers)
	}

	router.POST("/admin/login", r.authController.Login)
	router.POST("/admin/logout", r.authController.Logout)

	admin := router.Group("/admin", r.adminGate.RequireStaff())
	{
		admin.GET("/me", r.authController.Me)

		admin.GET("/suppliers", r.supplierController.ListSuppliers)
		admin.GET("/suppliers/:id", r.supplierController.GetSupplier)
		admin.POST("/suppliers", r.supplierController.CreateSupplier)
		admin.PUT("/suppliers/:id", r.supplierController.UpdateSupplier)
		admin.DELETE("/suppliers/:id", r.supplierController.DeleteSupplier)

		admin.GET("/categories", r.categoryController.ListCategories)
		admin.POST("/categories", r.categoryController.CreateCategory)
		admin.PUT("/categories/:id", r.categoryController.UpdateCategory)
		admin.DELETE("/categories/:id", r.categoryController.DeleteCategory)

		admin.GET("/subcategories", r.categoryController.ListSubcategories)
		admin.POST("/subcategories", r.categoryController.CreateSubcategory)
		admin.PUT("/subcategories/:id", r.categoryController.UpdateSubcategory)
		admin.DELETE("/subcategories/:id", r.categoryController.DeleteSubcategory)

		admin.GET("/statuses", r.statusController.ListStatuses)
		admin.POST("/statuses", r.statusController.CreateStatus)
		admin.PUT("/statuses/:id", r.statusController.UpdateStatus)
		admin.DELETE("/statuses/:id", r.statusController.DeleteStatus)

		admin.GET("/products", r.productController.ListProducts)
		admin.GET("/export/products", r.exportController.ExportProducts)
		admin.GET("/products/:id", r.productController.GetProduct)
		admin.POST("/products", r.productController.CreateProduct)
		admin.PUT("/products/:id", r.productController.UpdateProduct)
		admin.DELETE("/products/:id", r.productController.DeleteProduct)

		admin.POST("/products/:id/images", r.productController.AttachImages)
		admin.PUT("/products/:id/images/:image_id/primary", r.productController.SetPrimaryImage)
		admin.DELETE("/products/:id/images/:image_id", r.productController.DeleteImage)
		admin.POST("/products/:id/videos", r.productController.AttachVideos)
		admin.DELETE("/products/:id/videos/:video_id", r.productController.DeleteVideo)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
