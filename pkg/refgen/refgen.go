// Package refgen генерирует клиентские номера бронирований.
//
// Номер — 8 символов из алфавита A-Z0-9 (36^8 ≈ 2.8×10^12 комбинаций).
// Уникальность гарантируется не здесь, а unique constraint на уровне БД:
// вызывающий код обязан повторить генерацию при конфликте вставки.
package refgen

import (
	"crypto/rand"
	"fmt"
)

const (
	// Alphabet допустимые символы номера бронирования
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length длина номера бронирования
	Length = 8
)

// Generate возвращает новый случайный номер бронирования
func Generate() (string, error) {
	// Байты >= limit отбрасываются: 252 кратно 36, прямой остаток по модулю
	// от 256 значений смещал бы распределение в пользу начала алфавита
	const limit = 256 - 256%len(Alphabet)

	out := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("refgen: failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == Length {
				return string(out), nil
			}
		}
	}
}
