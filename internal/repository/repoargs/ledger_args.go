package repoargs

import "github.com/fsdevblog/tg-store/internal/domain"

// LedgerAppend аргументы добавления записи в журнал. Amount передается со знаком:
// положительный для начислений, отрицательный для списаний.
type LedgerAppend = domain.LedgerAppend
