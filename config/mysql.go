package config

// SourceConfig 描述一个 MySQL 数据源（写库或某个读库）。
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"` // 完整 DSN 连接串
	// 单源级别的连接池覆盖项，用指针区分“未配置”与“配置为零”，
	// 未配置时回落到 MySQLConfig 里的共享默认值。
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 汇总社区库的读写拓扑。
// 帖子/问答的列表查询读多写少，Read 配置了从库时由 dbresolver 分流读流量；
// Read 留空表示不启用读写分离，全部流量走写库。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`

	// 共享连接池默认值，被各数据源的同名覆盖项优先。
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conn"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conn" yaml:"max_open_conn"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
