package tap3ber

/*
dict_tap311.go contains the TAP 3.11 dictionary: every tag, field name and
type the release defines, sorted by tag for newDictionary's binary search.
*/

var tap311Entries = []dictEntry{
	{Tag: 1, Name: "TransferBatch", Type: TypeGroup},
	{Tag: 2, Name: "Notification", Type: TypeGroup},
	{Tag: 3, Name: "CallEventDetailList", Type: TypeGroup},
	{Tag: 4, Name: "BatchControlInfo", Type: TypeGroup},
	{Tag: 5, Name: "AccountingInfo", Type: TypeGroup},
	{Tag: 6, Name: "NetworkInfo", Type: TypeGroup},
	{Tag: 8, Name: "MessageDescriptionInfoList", Type: TypeGroup},
	{Tag: 9, Name: "MobileOriginatedCall", Type: TypeGroup},
	{Tag: 10, Name: "MobileTerminatedCall", Type: TypeGroup},
	{Tag: 11, Name: "SupplServiceEvent", Type: TypeGroup},
	{Tag: 12, Name: "ServiceCentreUsage", Type: TypeGroup},
	{Tag: 14, Name: "GprsCall", Type: TypeGroup},
	{Tag: 15, Name: "AuditControlInfo", Type: TypeGroup},
	{Tag: 16, Name: "LocalTimeStamp", Type: TypeOctetString},
	{Tag: 17, Name: "ContentTransaction", Type: TypeGroup},
	{Tag: 36, Name: "BasicService", Type: TypeGroup},
	{Tag: 37, Name: "BasicServiceCodeList", Type: TypeGroup},
	{Tag: 38, Name: "BasicServiceUsedList", Type: TypeGroup},
	{Tag: 39, Name: "BasicServiceUsed", Type: TypeGroup},
	{Tag: 40, Name: "BearerServiceCode", Type: TypeOctetString},
	{Tag: 41, Name: "CallOriginator", Type: TypeGroup},
	{Tag: 42, Name: "CalledPlace", Type: TypeOctetString},
	{Tag: 43, Name: "CallEventDetailsCount", Type: TypeInteger},
	{Tag: 44, Name: "CallEventStartTimeStamp", Type: TypeGroup},
	{Tag: 45, Name: "CallReference", Type: TypeInteger},
	{Tag: 46, Name: "CalledRegion", Type: TypeOctetString},
	{Tag: 55, Name: "CamelServiceKey", Type: TypeInteger},
	{Tag: 56, Name: "CamelServiceLevel", Type: TypeInteger},
	{Tag: 57, Name: "CamelServiceUsed", Type: TypeGroup},
	{Tag: 58, Name: "CauseForTerm", Type: TypeInteger},
	{Tag: 59, Name: "CellId", Type: TypeInteger},
	{Tag: 62, Name: "Charge", Type: TypeInteger},
	{Tag: 63, Name: "ChargeDetail", Type: TypeGroup},
	{Tag: 64, Name: "ChargeDetailList", Type: TypeGroup},
	{Tag: 65, Name: "ChargeableUnits", Type: TypeInteger},
	{Tag: 66, Name: "ChargedItem", Type: TypeOctetString},
	{Tag: 67, Name: "ChargedPartyStatus", Type: TypeInteger},
	{Tag: 68, Name: "ChargedUnits", Type: TypeInteger},
	{Tag: 69, Name: "ChargeInformation", Type: TypeGroup},
	{Tag: 70, Name: "ChargeInformationList", Type: TypeGroup},
	{Tag: 71, Name: "ChargeType", Type: TypeOctetString},
	{Tag: 72, Name: "ChargingId", Type: TypeInteger},
	{Tag: 73, Name: "ChargingPoint", Type: TypeOctetString},
	{Tag: 74, Name: "ChargingTimeStamp", Type: TypeGroup},
	{Tag: 75, Name: "ClirIndicator", Type: TypeInteger},
	{Tag: 76, Name: "CompletionTimeStamp", Type: TypeGroup},
	{Tag: 79, Name: "CseInformation", Type: TypeOctetString},
	{Tag: 80, Name: "CurrencyConversionList", Type: TypeGroup},
	{Tag: 87, Name: "DefaultCallHandlingIndicator", Type: TypeInteger},
	{Tag: 88, Name: "DepositTimeStamp", Type: TypeGroup},
	{Tag: 89, Name: "Destination", Type: TypeGroup},
	{Tag: 90, Name: "DestinationNetwork", Type: TypeOctetString},
	{Tag: 91, Name: "DiscountCode", Type: TypeInteger},
	{Tag: 92, Name: "DiscountRate", Type: TypeInteger},
	{Tag: 94, Name: "Discounting", Type: TypeGroup},
	{Tag: 95, Name: "DiscountingList", Type: TypeGroup},
	{Tag: 96, Name: "DiscountInformation", Type: TypeGroup},
	{Tag: 98, Name: "DistanceChargeBandCode", Type: TypeOctetString},
	{Tag: 101, Name: "EarliestCallTimeStamp", Type: TypeGroup},
	{Tag: 103, Name: "Esn", Type: TypeOctetString},
	{Tag: 104, Name: "ExchangeRate", Type: TypeInteger},
	{Tag: 105, Name: "ExchangeRateCode", Type: TypeInteger},
	{Tag: 106, Name: "CurrencyConversion", Type: TypeGroup},
	{Tag: 107, Name: "FileAvailableTimeStamp", Type: TypeGroup},
	{Tag: 108, Name: "FileCreationTimeStamp", Type: TypeGroup},
	{Tag: 109, Name: "FileSequenceNumber", Type: TypeOctetString},
	{Tag: 110, Name: "FileTypeIndicator", Type: TypeOctetString},
	{Tag: 111, Name: "Fnur", Type: TypeInteger},
	{Tag: 113, Name: "GeographicalLocation", Type: TypeGroup},
	{Tag: 114, Name: "GprsBasicCallInformation", Type: TypeGroup},
	{Tag: 115, Name: "GprsChargeableSubscriber", Type: TypeGroup},
	{Tag: 116, Name: "GprsDestination", Type: TypeGroup},
	{Tag: 117, Name: "GprsLocationInformation", Type: TypeGroup},
	{Tag: 118, Name: "GprsNetworkLocation", Type: TypeGroup},
	{Tag: 121, Name: "GprsServiceUsed", Type: TypeGroup},
	{Tag: 122, Name: "HomeBid", Type: TypeOctetString},
	{Tag: 123, Name: "HomeLocationInformation", Type: TypeGroup},
	{Tag: 128, Name: "Imei", Type: TypeBCDString},
	{Tag: 129, Name: "Imsi", Type: TypeBCDString},
	{Tag: 133, Name: "LatestCallTimeStamp", Type: TypeGroup},
	{Tag: 135, Name: "LocalCurrency", Type: TypeOctetString},
	{Tag: 136, Name: "LocationArea", Type: TypeInteger},
	{Tag: 138, Name: "LocationInformation", Type: TypeGroup},
	{Tag: 141, Name: "MessageDescriptionCode", Type: TypeInteger},
	{Tag: 142, Name: "MessageDescription", Type: TypeOctetString},
	{Tag: 143, Name: "MessageDescriptionInformation", Type: TypeGroup},
	{Tag: 144, Name: "MessageStatus", Type: TypeInteger},
	{Tag: 145, Name: "MessageType", Type: TypeInteger},
	{Tag: 146, Name: "Min", Type: TypeOctetString},
	{Tag: 147, Name: "MoBasicCallInformation", Type: TypeGroup},
	{Tag: 152, Name: "Msisdn", Type: TypeInteger},
	{Tag: 153, Name: "MtBasicCallInformation", Type: TypeGroup},
	{Tag: 156, Name: "NetworkLocation", Type: TypeGroup},
	{Tag: 159, Name: "NumberOfDecimalPlaces", Type: TypeInteger},
	{Tag: 162, Name: "OperatorSpecInfoList", Type: TypeGroup},
	{Tag: 163, Name: "OperatorSpecInformation", Type: TypeOctetString},
	{Tag: 164, Name: "OriginatingNetwork", Type: TypeOctetString},
	{Tag: 165, Name: "PacketDataProtocolAddress", Type: TypeOctetString},
	{Tag: 166, Name: "PartialTypeIndicator", Type: TypeOctetString},
	{Tag: 167, Name: "PdpAddress", Type: TypeOctetString},
	{Tag: 169, Name: "PlmnId", Type: TypeOctetString},
	{Tag: 170, Name: "PriorityCode", Type: TypeInteger},
	{Tag: 181, Name: "RapFileSequenceNumber", Type: TypeOctetString},
	{Tag: 182, Name: "Recipient", Type: TypeOctetString},
	{Tag: 183, Name: "RecEntityInformation", Type: TypeGroup},
	{Tag: 184, Name: "RecEntityCode", Type: TypeInteger},
	{Tag: 185, Name: "RecEntityCodeList", Type: TypeGroup},
	{Tag: 186, Name: "RecEntityType", Type: TypeInteger},
	{Tag: 188, Name: "RecEntityInfoList", Type: TypeGroup},
	{Tag: 189, Name: "ReleaseVersionNumber", Type: TypeInteger},
	{Tag: 191, Name: "ScuBasicInformation", Type: TypeGroup},
	{Tag: 192, Name: "ScuChargeType", Type: TypeGroup},
	{Tag: 193, Name: "ScuTimeStamps", Type: TypeGroup},
	{Tag: 195, Name: "ServingNetwork", Type: TypeOctetString},
	{Tag: 196, Name: "Sender", Type: TypeOctetString},
	{Tag: 198, Name: "ServingBid", Type: TypeOctetString},
	{Tag: 199, Name: "SimChargeableSubscriber", Type: TypeGroup},
	{Tag: 200, Name: "SimToolkitIndicator", Type: TypeOctetString},
	{Tag: 201, Name: "SpecificationVersionNumber", Type: TypeInteger},
	{Tag: 204, Name: "SsParameters", Type: TypeOctetString},
	{Tag: 206, Name: "SupplServiceUsed", Type: TypeGroup},
	{Tag: 208, Name: "SupplServiceActionCode", Type: TypeInteger},
	{Tag: 209, Name: "SupplServiceCode", Type: TypeOctetString},
	{Tag: 210, Name: "TapCurrency", Type: TypeOctetString},
	{Tag: 211, Name: "TaxationList", Type: TypeGroup},
	{Tag: 212, Name: "TaxCode", Type: TypeInteger},
	{Tag: 213, Name: "TaxInformation", Type: TypeGroup},
	{Tag: 214, Name: "TaxInformationList", Type: TypeGroup},
	{Tag: 215, Name: "TaxRate", Type: TypeOctetString},
	{Tag: 216, Name: "Taxation", Type: TypeGroup},
	{Tag: 217, Name: "TaxType", Type: TypeOctetString},
	{Tag: 218, Name: "TeleServiceCode", Type: TypeOctetString},
	{Tag: 219, Name: "ThirdPartyInformation", Type: TypeGroup},
	{Tag: 223, Name: "TotalCallEventDuration", Type: TypeInteger},
	{Tag: 225, Name: "TotalDiscountValue", Type: TypeInteger},
	{Tag: 226, Name: "TotalTaxValue", Type: TypeInteger},
	{Tag: 227, Name: "TransferCutOffTimeStamp", Type: TypeGroup},
	{Tag: 228, Name: "TransparencyIndicator", Type: TypeInteger},
	{Tag: 231, Name: "UtcTimeOffset", Type: TypeOctetString},
	{Tag: 232, Name: "UtcTimeOffsetCode", Type: TypeInteger},
	{Tag: 233, Name: "UtcTimeOffsetInfo", Type: TypeGroup},
	{Tag: 234, Name: "UtcTimeOffsetInfoList", Type: TypeGroup},
	{Tag: 244, Name: "TapDecimalPlaces", Type: TypeInteger},
	{Tag: 245, Name: "NetworkInitPDPContext", Type: TypeInteger},
	{Tag: 250, Name: "DataVolumeIncoming", Type: TypeInteger64},
	{Tag: 251, Name: "DataVolumeOutgoing", Type: TypeInteger64},
	{Tag: 253, Name: "Mdn", Type: TypeOctetString},
	{Tag: 254, Name: "MinChargeableSubscriber", Type: TypeGroup},
	{Tag: 255, Name: "CallTypeLevel2", Type: TypeInteger},
	{Tag: 256, Name: "CallTypeLevel3", Type: TypeInteger},
	{Tag: 258, Name: "CallTypeGroup", Type: TypeGroup},
	{Tag: 259, Name: "CallTypeLevel1", Type: TypeInteger},
	{Tag: 260, Name: "PDPContextStartTimestamp", Type: TypeGroup},
	{Tag: 261, Name: "AccessPointNameNI", Type: TypeOctetString},
	{Tag: 262, Name: "AccessPointNameOI", Type: TypeOctetString},
	{Tag: 279, Name: "DialledDigits", Type: TypeOctetString},
	{Tag: 280, Name: "UserProtocolIndicator", Type: TypeInteger},
	{Tag: 281, Name: "ObjectType", Type: TypeInteger},
	{Tag: 285, Name: "ContentServiceUsedList", Type: TypeGroup},
	{Tag: 286, Name: "GsmChargeableSubscriber", Type: TypeGroup},
	{Tag: 287, Name: "ChargedPartyIdentifier", Type: TypeOctetString},
	{Tag: 288, Name: "HomeIdentifier", Type: TypeOctetString},
	{Tag: 289, Name: "LocationIdentifier", Type: TypeOctetString},
	{Tag: 290, Name: "EquipmentId", Type: TypeOctetString},
	{Tag: 291, Name: "ContentProviderIdType", Type: TypeInteger},
	{Tag: 292, Name: "ContentProviderIdentifier", Type: TypeOctetString},
	{Tag: 293, Name: "IspIdType", Type: TypeInteger},
	{Tag: 294, Name: "IspIdentifier", Type: TypeOctetString},
	{Tag: 295, Name: "NetworkIdentifier", Type: TypeOctetString},
	{Tag: 297, Name: "LocationService", Type: TypeGroup},
	{Tag: 298, Name: "TrackingCustomerInformation", Type: TypeGroup},
	{Tag: 299, Name: "TrackingCustomerIdList", Type: TypeGroup},
	{Tag: 300, Name: "OrderPlacedTimeStamp", Type: TypeGroup},
	{Tag: 301, Name: "RequestedDeliveryTimeStamp", Type: TypeGroup},
	{Tag: 302, Name: "ActualDeliveryTimeStamp", Type: TypeGroup},
	{Tag: 303, Name: "TransactionStatus", Type: TypeInteger},
	{Tag: 304, Name: "ContentTransactionBasicInfo", Type: TypeGroup},
	{Tag: 305, Name: "ChargedPartyIdType", Type: TypeInteger},
	{Tag: 309, Name: "ChargedPartyIdentification", Type: TypeGroup},
	{Tag: 310, Name: "ChargedPartyIdList", Type: TypeGroup},
	{Tag: 311, Name: "HomeIdType", Type: TypeInteger},
	{Tag: 313, Name: "ChargedPartyHomeIdentification", Type: TypeGroup},
	{Tag: 314, Name: "ChargedPartyHomeIdList", Type: TypeGroup},
	{Tag: 315, Name: "LocationIdType", Type: TypeInteger},
	{Tag: 320, Name: "ChargedPartyLocation", Type: TypeGroup},
	{Tag: 321, Name: "ChargedPartyLocationList", Type: TypeGroup},
	{Tag: 322, Name: "EquipmentIdType", Type: TypeInteger},
	{Tag: 323, Name: "ChargedPartyEquipment", Type: TypeGroup},
	{Tag: 324, Name: "ChargedPartyInformation", Type: TypeGroup},
	{Tag: 327, Name: "ContentProvider", Type: TypeGroup},
	{Tag: 328, Name: "ContentProviderIdList", Type: TypeGroup},
	{Tag: 329, Name: "InternetServiceProvider", Type: TypeGroup},
	{Tag: 330, Name: "InternetServiceProviderIdList", Type: TypeGroup},
	{Tag: 331, Name: "NetworkIdType", Type: TypeInteger},
	{Tag: 332, Name: "Network", Type: TypeGroup},
	{Tag: 333, Name: "NetworkList", Type: TypeGroup},
	{Tag: 334, Name: "ContentProviderName", Type: TypeOctetString},
	{Tag: 335, Name: "ServingPartiesInformation", Type: TypeGroup},
	{Tag: 336, Name: "ContentTransactionCode", Type: TypeInteger},
	{Tag: 337, Name: "ContentTransactionType", Type: TypeInteger},
	{Tag: 338, Name: "TransactionDescriptionSupp", Type: TypeInteger},
	{Tag: 339, Name: "TransactionDetailDescription", Type: TypeOctetString},
	{Tag: 340, Name: "TransactionShortDescription", Type: TypeOctetString},
	{Tag: 341, Name: "TransactionIdentifier", Type: TypeOctetString},
	{Tag: 342, Name: "TransactionAuthCode", Type: TypeOctetString},
	{Tag: 343, Name: "TotalDataVolume", Type: TypeInteger64},
	{Tag: 344, Name: "ChargeRefundIndicator", Type: TypeInteger},
	{Tag: 345, Name: "ContentChargingPoint", Type: TypeInteger},
	{Tag: 346, Name: "PaidIndicator", Type: TypeInteger},
	{Tag: 347, Name: "PaymentMethod", Type: TypeInteger},
	{Tag: 348, Name: "AdvisedChargeCurrency", Type: TypeGroup},
	{Tag: 349, Name: "AdvisedCharge", Type: TypeGroup},
	{Tag: 350, Name: "Commission", Type: TypeGroup},
	{Tag: 351, Name: "AdvisedChargeInformation", Type: TypeGroup},
	{Tag: 352, Name: "ContentServiceUsed", Type: TypeGroup},
	{Tag: 353, Name: "TotalTaxRefund", Type: TypeInteger},
	{Tag: 354, Name: "TotalDiscountRefund", Type: TypeInteger},
	{Tag: 355, Name: "TotalChargeRefund", Type: TypeInteger},
	{Tag: 356, Name: "TotalAdvisedCharge", Type: TypeInteger},
	{Tag: 357, Name: "TotalAdvisedChargeRefund", Type: TypeInteger},
	{Tag: 358, Name: "TotalCommission", Type: TypeInteger},
	{Tag: 359, Name: "TotalCommissionRefund", Type: TypeInteger},
	{Tag: 360, Name: "TotalAdvisedChargeValue", Type: TypeGroup},
	{Tag: 361, Name: "TotalAdvisedChargeValueList", Type: TypeGroup},
	{Tag: 362, Name: "TrackingCustomerIdentification", Type: TypeGroup},
	{Tag: 363, Name: "CustomerIdType", Type: TypeInteger},
	{Tag: 364, Name: "CustomerIdentifier", Type: TypeOctetString},
	{Tag: 365, Name: "TrackingCustomerHomeIdList", Type: TypeGroup},
	{Tag: 366, Name: "TrackingCustomerHomeId", Type: TypeGroup},
	{Tag: 367, Name: "TrackedCustomerInformation", Type: TypeGroup},
	{Tag: 368, Name: "TrackingCustomerLocList", Type: TypeGroup},
	{Tag: 369, Name: "TrackingCustomerLocation", Type: TypeGroup},
	{Tag: 370, Name: "TrackedCustomerIdList", Type: TypeGroup},
	{Tag: 371, Name: "TrackingCustomerEquipment", Type: TypeGroup},
	{Tag: 372, Name: "TrackedCustomerIdentification", Type: TypeGroup},
	{Tag: 373, Name: "LCSSPInformation", Type: TypeGroup},
	{Tag: 374, Name: "LCSSPIdentificationList", Type: TypeGroup},
	{Tag: 375, Name: "LCSSPIdentification", Type: TypeGroup},
	{Tag: 376, Name: "TrackedCustomerHomeIdList", Type: TypeGroup},
	{Tag: 377, Name: "TrackedCustomerHomeId", Type: TypeGroup},
	{Tag: 378, Name: "ISPList", Type: TypeGroup},
	{Tag: 379, Name: "TrackedCustomerLocList", Type: TypeGroup},
	{Tag: 380, Name: "TrackedCustomerLocation", Type: TypeGroup},
	{Tag: 381, Name: "TrackedCustomerEquipment", Type: TypeGroup},
	{Tag: 382, Name: "LocationServiceUsage", Type: TypeGroup},
	{Tag: 383, Name: "LCSQosRequested", Type: TypeGroup},
	{Tag: 384, Name: "LCSRequestTimestamp", Type: TypeGroup},
	{Tag: 385, Name: "HorizontalAccuracyRequested", Type: TypeInteger},
	{Tag: 386, Name: "VerticalAccuracyRequested", Type: TypeInteger},
	{Tag: 387, Name: "ResponseTimeCategory", Type: TypeInteger},
	{Tag: 388, Name: "TrackingPeriod", Type: TypeInteger},
	{Tag: 389, Name: "TrackingFrequency", Type: TypeInteger},
	{Tag: 390, Name: "LCSQosDelivered", Type: TypeGroup},
	{Tag: 391, Name: "LCSTransactionStatus", Type: TypeInteger},
	{Tag: 392, Name: "HorizontalAccuracyDelivered", Type: TypeInteger},
	{Tag: 393, Name: "VerticalAccuracyDelivered", Type: TypeInteger},
	{Tag: 394, Name: "ResponseTime", Type: TypeInteger},
	{Tag: 395, Name: "PositioningMethod", Type: TypeInteger},
	{Tag: 396, Name: "AgeOfLocation", Type: TypeInteger},
	{Tag: 397, Name: "TaxValue", Type: TypeInteger},
	{Tag: 398, Name: "TaxableAmount", Type: TypeInteger},
	{Tag: 400, Name: "RecEntityId", Type: TypeOctetString},
	{Tag: 402, Name: "NonChargedNumber", Type: TypeOctetString},
	{Tag: 403, Name: "ThirdPartyNumber", Type: TypeOctetString},
	{Tag: 404, Name: "CamelDestinationNumber", Type: TypeOctetString},
	{Tag: 405, Name: "CallingNumber", Type: TypeInteger},
	{Tag: 407, Name: "CalledNumber", Type: TypeInteger},
	{Tag: 410, Name: "ChargeDetailTimeStamp", Type: TypeGroup},
	{Tag: 411, Name: "FixedDiscountValue", Type: TypeInteger},
	{Tag: 412, Name: "Discount", Type: TypeInteger},
	{Tag: 413, Name: "HomeLocationDescription", Type: TypeOctetString},
	{Tag: 414, Name: "ServingLocationDescription", Type: TypeOctetString},
	{Tag: 415, Name: "TotalCharge", Type: TypeInteger},
	{Tag: 416, Name: "TotalTransactionDuration", Type: TypeInteger64},
	{Tag: 417, Name: "NetworkAccessIdentifier", Type: TypeOctetString},
	{Tag: 418, Name: "IMSSignallingContext", Type: TypeInteger},
	{Tag: 419, Name: "SMSDestinationNumber", Type: TypeOctetString},
	{Tag: 420, Name: "GuaranteedBitRate", Type: TypeOctetString},
	{Tag: 421, Name: "MaximumBitRate", Type: TypeOctetString},
	{Tag: 422, Name: "CamelInvocationFee", Type: TypeInteger},
	{Tag: 423, Name: "DiscountableAmount", Type: TypeInteger},
	{Tag: 424, Name: "HSCSDIndicator", Type: TypeOctetString},
	{Tag: 425, Name: "SMSOriginator", Type: TypeOctetString},
	{Tag: 426, Name: "BasicServiceCode", Type: TypeGroup},
	{Tag: 427, Name: "ChargeableSubscriber", Type: TypeGroup},
	{Tag: 428, Name: "DiscountApplied", Type: TypeGroup},
	{Tag: 429, Name: "ImeiOrEsn", Type: TypeGroup},
	{Tag: 430, Name: "ScuChargeableSubscriber", Type: TypeGroup},
	{Tag: 431, Name: "ThreeGcamelDestination", Type: TypeGroup},
}
