package db

import (
	"testing"

	"github.com/ecosnap/ecosnap-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "bare host gets tcp wrapper",
			cfg:  config.Config{DBUser: "eco", DBPassword: "pw", DBHost: "db.internal", DBPort: "3306", DBName: "ecosnap"},
			want: "eco:pw@tcp(db.internal:3306)/ecosnap?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "pre-wrapped tcp address passes through",
			cfg:  config.Config{DBUser: "eco", DBPassword: "pw", DBHost: "tcp(10.0.0.5:3307)", DBName: "ecosnap"},
			want: "eco:pw@tcp(10.0.0.5:3307)/ecosnap?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "socket path gets unix wrapper",
			cfg:  config.Config{DBUser: "eco", DBPassword: "pw", DBHost: "/var/run/mysqld/mysqld.sock", DBName: "ecosnap"},
			want: "eco:pw@unix(/var/run/mysqld/mysqld.sock)/ecosnap?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "instance connection name wins",
			cfg:  config.Config{DBUser: "eco", DBPassword: "pw", DBHost: "ignored", InstanceConnectionName: "proj:region:inst", DBName: "ecosnap"},
			want: "eco:pw@unix(/cloudsql/proj:region:inst)/ecosnap?charset=utf8mb4&parseTime=True&loc=UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildDSN(&tt.cfg))
		})
	}
}
