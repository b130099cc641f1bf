package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
)

var SnapClient snap.Client

// InitMidtrans initialise le client Snap avec la clé serveur.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken crée le token de paiement Snap pour une cotisation.
func GenerateSnapToken(orderID string, contribution contributionModel.ContributionModel, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: contribution.ContributionAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
