package config

import "time"

// Config holds application configuration.
type Config struct {
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"json"`
	Parallelism int           `env:"SYNC_PARALLELISM" envDefault:"1"`

	Inventory Inventory
	Ozon      Ozon
	Yandex    Yandex
	RabbitMQ  RabbitMQ
}

// Inventory holds inventory source configuration.
type Inventory struct {
	URL       string `env:"INVENTORY_URL" envDefault:"https://timeworld.ru/upload/files/ostatki.zip"`
	File      string `env:"INVENTORY_FILE" envDefault:"ostatki.xls"`
	HeaderRow int    `env:"INVENTORY_HEADER_ROW" envDefault:"17"`
}

// Ozon holds seller API configuration.
type Ozon struct {
	Token          string `env:"SELLER_TOKEN"`
	ClientID       string `env:"CLIENT_ID"`
	URL            string `env:"OZON_URL" envDefault:"https://api-seller.ozon.ru"`
	StockBatchSize int    `env:"OZON_STOCK_BATCH" envDefault:"100"`
	PriceBatchSize int    `env:"OZON_PRICE_BATCH" envDefault:"900"`
}

// Enabled reports whether seller credentials are set.
func (o Ozon) Enabled() bool {
	return o.Token != "" && o.ClientID != ""
}

// Yandex holds partner API configuration.
type Yandex struct {
	Token          string `env:"MARKET_TOKEN"`
	FBSCampaignID  string `env:"FBS_ID"`
	DBSCampaignID  string `env:"DBS_ID"`
	FBSWarehouseID string `env:"WAREHOUSE_FBS_ID"`
	DBSWarehouseID string `env:"WAREHOUSE_DBS_ID"`
	URL            string `env:"YANDEX_URL" envDefault:"https://api.partner.market.yandex.ru"`
	StockBatchSize int    `env:"YANDEX_STOCK_BATCH" envDefault:"2000"`
	PriceBatchSize int    `env:"YANDEX_PRICE_BATCH" envDefault:"500"`
}

// Enabled reports whether partner token and at least one campaign are set.
func (y Yandex) Enabled() bool {
	return y.Token != "" && (y.FBSCampaignID != "" || y.DBSCampaignID != "")
}

// RabbitMQ holds RabbitMQ configuration, worker mode is enabled when URL is set.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"stock-sync-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"stock-sync.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"stock-sync.cmd.sync"`
}
