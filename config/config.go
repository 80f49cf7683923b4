package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Plog      PlogConfigs
	Storage   S3Configs
	Redis     RedisConfigs
	File      FileConfigs
	LogLevel  int
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string

	MaxLimit int
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type PlogConfigs struct {
	// TreeSeedCost is the number of seeds debited when a user plants a tree.
	TreeSeedCost int

	// SeedPerTrash and SeedPerKilometer control how many seeds an activity
	// earns.
	SeedPerTrash     int
	SeedPerKilometer int
}

type S3Configs struct {
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	SSLDisabled    bool
	Bucket         string
}

type RedisConfigs struct {
	Addr string
}

type FileConfigs struct {
	MaxSize int64
}
