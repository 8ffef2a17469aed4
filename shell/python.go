package shell

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Fiedzia/dbexport/config"
	"github.com/Fiedzia/dbexport/sources"
)

//go:embed mysql.py
var mysqlScript string

// PythonMysql spawns an ipython session with an open pymysql connection.
// On first use it creates a virtualenv under the config directory and
// installs the dependencies into it.
func PythonMysql(opts *sources.MysqlOptions) error {
	configDir, err := config.EnsureDir()
	if err != nil {
		return err
	}
	venvDir := filepath.Join(configDir, "python_venv", "mysql")
	if _, err := os.Stat(venvDir); os.IsNotExist(err) {
		if err := run("python3", []string{"-m", "venv", venvDir}, nil); err != nil {
			return fmt.Errorf("creation of virtualenv failed: %w", err)
		}
		pip := filepath.Join(venvDir, "bin", "pip")
		if err := run(pip, []string{"install", "ipython", "pymysql"}, nil); err != nil {
			return fmt.Errorf("could not install dependencies via pip: %w", err)
		}
	}
	script := filepath.Join(venvDir, "run.py")
	if _, err := os.Stat(script); os.IsNotExist(err) {
		if err := os.WriteFile(script, []byte(mysqlScript), 0o644); err != nil {
			return fmt.Errorf("cannot write client script: %w", err)
		}
	}
	env := []string{
		"MYSQL_HOST=" + opts.Host,
		"MYSQL_USER=" + opts.User,
		"MYSQL_PASSWORD=" + opts.Password,
		"MYSQL_DATABASE=" + opts.Database,
	}
	if opts.Port != 0 {
		env = append(env, "MYSQL_PORT="+strconv.Itoa(opts.Port))
	}
	python := filepath.Join(venvDir, "bin", "python")
	return run(python, []string{script}, env)
}
