package routers

import (
	"os"

	"financetrackerapi/advice"
	"financetrackerapi/controllers"
	"financetrackerapi/middlewares"
	"financetrackerapi/state"
	"financetrackerapi/store"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func Route() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())
	api := controllers.NewAPI()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	api.State = state.New(store.Open(dataDir))
	api.Advice = advice.NewClient(os.Getenv("ADVICE_API_URL"))

	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")

	api.Redis = redis.NewClient(&redis.Options{
		Addr: redisHost + ":" + redisPort,
		DB:   0,
	})

	router.POST("/api/login", api.Authenticate)
	router.GET("/api/check-session", middlewares.Auth(api.Redis), api.CheckSession)
	router.GET("/api/logout", middlewares.Auth(api.Redis), api.Logout)

	user := router.Group("/api/user")
	user.Use(middlewares.Auth(api.Redis))
	{
		user.GET("", api.GetUser)
		user.PUT("", api.UpdateUser)
	}

	expenses := router.Group("/api/expenses")
	expenses.Use(middlewares.Auth(api.Redis))
	{
		expenses.GET("", api.GetExpenses)
		expenses.GET("/report", api.GetExpensesReport)
		expenses.POST("", api.CreateExpense)
		expenses.DELETE("/:id", api.DeleteExpense)
	}

	incomes := router.Group("/api/incomes")
	incomes.Use(middlewares.Auth(api.Redis))
	{
		incomes.GET("", api.GetIncomes)
		incomes.GET("/report", api.GetIncomesReport)
		incomes.POST("", api.CreateIncome)
		incomes.DELETE("/:id", api.DeleteIncome)
	}

	goals := router.Group("/api/goals")
	goals.Use(middlewares.Auth(api.Redis))
	{
		goals.GET("", api.GetGoals)
		goals.POST("", api.CreateGoal)
		goals.POST("/:id/contribute", api.ContributeGoal)
		goals.DELETE("/:id", api.DeleteGoal)
	}

	reminders := router.Group("/api/reminders")
	reminders.Use(middlewares.Auth(api.Redis))
	{
		reminders.GET("", api.GetReminders)
		reminders.POST("", api.CreateReminder)
		reminders.PATCH("/:id", api.UpdateReminder)
		reminders.DELETE("/:id", api.DeleteReminder)
	}

	chat := router.Group("/api/chat")
	chat.Use(middlewares.Auth(api.Redis))
	{
		chat.GET("", api.GetChatMessages)
		chat.POST("", api.SendChatMessage)
		chat.DELETE("", api.ClearChat)
	}

	settings := router.Group("/api/settings")
	settings.Use(middlewares.Auth(api.Redis))
	{
		settings.GET("", api.GetSettings)
		settings.PUT("", api.UpdateSettings)
		settings.GET("/export", api.ExportData)
		settings.POST("/digest", api.SendReminderDigest)
		settings.DELETE("/data", api.ClearData)
	}

	router.GET("/api/dashboard", middlewares.Auth(api.Redis), api.GetDashboard)

	return router
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
