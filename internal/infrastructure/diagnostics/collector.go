// Package diagnostics gathers live state from a customer server over SSH so
// the analysis step can reason from real data instead of the inquiry text
// alone.
package diagnostics

import (
	"context"
	"fmt"
	"strings"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/logger"
)

// CommandRunner executes one shell command on a remote target.
type CommandRunner interface {
	Run(ctx context.Context, target Target, command string) (string, error)
}

// Target is a resolved SSH endpoint with a decrypted password.
type Target struct {
	Host     string
	Port     int
	User     string
	Password string
}

type probe struct {
	key     string
	command string
}

// Base battery run against every reachable server. Each command carries its
// own fallback chain so a single probe never depends on which distro or
// web stack the server runs.
var baseProbes = []probe{
	{"uptime", "uptime"},
	{"disk", "df -h / 2>&1 | tail -1"},
	{"memory", `free -h 2>&1 | grep -E "Mem|total"`},
	{"cpu_load", "cat /proc/loadavg 2>&1"},
	{"web_server", `systemctl is-active nginx 2>/dev/null || systemctl is-active apache2 2>/dev/null || systemctl is-active httpd 2>/dev/null || echo "unknown"`},
	{"mysql_status", `systemctl is-active mysql 2>/dev/null || systemctl is-active mariadb 2>/dev/null || systemctl is-active mysqld 2>/dev/null || echo "unknown"`},
	{"web_error_log", `tail -20 /var/log/nginx/error.log 2>/dev/null || tail -20 /var/log/apache2/error.log 2>/dev/null || tail -20 /var/log/httpd/error_log 2>/dev/null || echo "로그 없음"`},
	{"php_error_log", `tail -20 /var/log/php*error*.log 2>/dev/null || tail -20 /var/log/php-fpm/*.log 2>/dev/null || echo "로그 없음"`},
	{"php_fpm_status", `systemctl is-active php*-fpm 2>/dev/null || echo "unknown"`},
	{"listening_ports", `ss -tlnp 2>/dev/null | grep -E ":80|:443|:3306|:8080" || netstat -tlnp 2>/dev/null | grep -E ":80|:443|:3306|:8080" || echo "확인 불가"`},
	{"recent_cron", `tail -10 /var/log/syslog 2>/dev/null | grep -i cron || tail -10 /var/log/cron 2>/dev/null || echo "없음"`},
}

// ProbeLabels maps probe keys to the human-readable labels used when the
// results are rendered into an analysis prompt.
var ProbeLabels = map[string]string{
	"uptime":          "서버 가동시간",
	"disk":            "디스크 사용량",
	"memory":          "메모리 상태",
	"cpu_load":        "CPU 부하",
	"web_server":      "웹서버 상태",
	"mysql_status":    "MySQL/MariaDB 상태",
	"php_fpm_status":  "PHP-FPM 상태",
	"listening_ports": "리슨 포트",
	"site_http_check": "사이트 HTTP 응답",
	"db_check":        "DB 접속 확인",
	"db_process":      "DB 프로세스",
	"web_error_log":   "웹서버 에러 로그 (최근)",
	"php_error_log":   "PHP 에러 로그 (최근)",
	"recent_cron":     "최근 크론 로그",
}

// ProbeOrder is the rendering order of collected results.
var ProbeOrder = []string{
	"uptime", "disk", "memory", "cpu_load", "web_server", "mysql_status",
	"web_error_log", "php_error_log", "php_fpm_status", "listening_ports",
	"recent_cron", "site_http_check", "db_check", "db_process",
}

// Decryptor turns a stored credential blob back into a usable password.
type Decryptor interface {
	Decrypt(blob string) (string, error)
}

type Collector struct {
	runner    CommandRunner
	decryptor Decryptor
	log       logger.Interface
}

func NewCollector(runner CommandRunner, decryptor Decryptor, log logger.Interface) *Collector {
	return &Collector{
		runner:    runner,
		decryptor: decryptor,
		log:       log,
	}
}

// Collect runs the probe battery against srv. It returns nil when the server
// record lacks an address or SSH password; diagnostics are optional and the
// pipeline carries on without them. A dead host is not an error either: every
// probe maps to an error string and the map is returned as-is.
func (c *Collector) Collect(ctx context.Context, srv *server.Server) map[string]string {
	if srv == nil || srv.Host() == "" || srv.SSHPass() == "" {
		return nil
	}

	password, err := c.decryptor.Decrypt(srv.SSHPass())
	if err != nil || password == "" {
		c.log.Warnw("ssh password unavailable, skipping diagnostics", "site", srv.SiteName())
		return nil
	}

	target := Target{
		Host:     srv.Host(),
		Port:     srv.Port(),
		User:     srv.SSHUser(),
		Password: password,
	}

	probes := make([]probe, 0, len(baseProbes)+3)
	probes = append(probes, baseProbes...)

	if srv.SiteURL() != "" {
		probes = append(probes, probe{
			"site_http_check",
			fmt.Sprintf("curl -sI -o /dev/null -w '%%{http_code} %%{time_total}s' --max-time 10 'https://%s' 2>&1 || curl -sI -o /dev/null -w '%%{http_code} %%{time_total}s' --max-time 10 'http://%s' 2>&1", srv.SiteURL(), srv.SiteURL()),
		})
	}

	if srv.DBPass() != "" {
		if dbPass, err := c.decryptor.Decrypt(srv.DBPass()); err == nil && dbPass != "" {
			dbUser := srv.DBUser()
			if dbUser == "" {
				dbUser = "root"
			}
			probes = append(probes,
				probe{"db_check", fmt.Sprintf("mysql -u%s -p%s -e 'SHOW DATABASES;' 2>&1 | head -20", shellQuote(dbUser), shellQuote(dbPass))},
				probe{"db_process", fmt.Sprintf("mysql -u%s -p%s -e 'SHOW PROCESSLIST;' 2>&1 | head -20", shellQuote(dbUser), shellQuote(dbPass))},
			)
		}
	}

	results := make(map[string]string, len(probes))
	for _, p := range probes {
		output, err := c.runner.Run(ctx, target, p.command)
		if err != nil {
			results[p.key] = fmt.Sprintf("수집 실패: %v", err)
			continue
		}
		results[p.key] = output
	}

	return results
}

// shellQuote single-quotes a value for safe interpolation into a remote
// command line.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
