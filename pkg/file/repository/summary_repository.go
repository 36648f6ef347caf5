package repository

import "docqa/entities"

type SummaryRepository interface {
	Create(*entities.Summary) error
}
