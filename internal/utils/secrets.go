package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// secretsDir - каталог, куда Docker Secrets монтирует файлы секретов
// (db_password, jwt_secret, password_pepper и т.д.). Переопределяется в тестах.
var secretsDir = "/run/secrets"

// ReadSecret читает секрет по имени из файла в secretsDir.
// Значение обрезается по пробельным символам; пустой файл
// равносилен отсутствующему секрету.
func ReadSecret(name string) (string, error) {
	path := filepath.Join(secretsDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file %s: %w", path, err)
	}
	secret := strings.TrimSpace(string(raw))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", path)
	}
	return secret, nil
}
